package validate

import (
	"fmt"

	"fqlint/core/fastq"
)

// DefaultAlphabet is the nucleotide set accepted by DefaultAlphabetValidator.
const DefaultAlphabet = "ACGTNacgtn"

// AlphabetValidator [S002] (medium) checks that every byte of the sequence
// line belongs to a fixed set.
type AlphabetValidator struct {
	allowed [256]bool
}

func NewAlphabetValidator(chars []byte) *AlphabetValidator {
	v := &AlphabetValidator{}
	for _, c := range chars {
		v.allowed[c] = true
	}
	return v
}

// DefaultAlphabetValidator accepts ACGTN in either case.
func DefaultAlphabetValidator() *AlphabetValidator {
	return NewAlphabetValidator([]byte(DefaultAlphabet))
}

func (v *AlphabetValidator) Code() string    { return "S002" }
func (v *AlphabetValidator) Name() string    { return "AlphabetValidator" }
func (v *AlphabetValidator) Level() Severity { return Medium }

// Contains reports whether c is permitted.
func (v *AlphabetValidator) Contains(c byte) bool { return v.allowed[c] }

// Alphabet returns the permitted bytes in ascending order.
func (v *AlphabetValidator) Alphabet() []byte {
	var out []byte
	for c := range v.allowed {
		if v.allowed[c] {
			out = append(out, byte(c))
		}
	}
	return out
}

func (v *AlphabetValidator) Validate(r *fastq.Record) error {
	for i, c := range r.Sequence() {
		if !v.allowed[c] {
			return NewDiagnosis(
				v.Code(),
				v.Name(),
				fmt.Sprintf("Invalid character: %c", c),
				FieldSequence,
				At(i+1),
			)
		}
	}
	return nil
}
