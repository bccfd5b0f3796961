package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fqlint/core/fastq"
)

const (
	DefaultFalsePositiveRate = 0.0001
	DefaultCapacity          = 10000
)

// DuplicateNameValidator [S007] (high) checks that record names are unique.
//
// Pass 1 (Insert) runs every name through a membership filter. Names the
// filter has probably seen before become candidates with a zero counter; all
// other names are forgotten. Because the filter has no false negatives every
// true repeat becomes a candidate, and memory stays proportional to true
// duplicates plus false positives.
//
// Pass 2 (Verify) replays the records in the same order. The first sighting of
// a candidate passes and bumps its counter; every later sighting fails.
// A name the filter flagged only by accident is seen once in pass 2 and so
// passes, which is why the filter result alone is never reported.
//
// One instance serves one run. There is no reset.
type DuplicateNameValidator struct {
	filter     MembershipFilter
	candidates map[string]uint8
}

// NewDuplicateNameValidator uses a scalable Bloom filter with the default
// rate and capacity.
func NewDuplicateNameValidator() *DuplicateNameValidator {
	v, err := NewDuplicateNameValidatorSized(DefaultFalsePositiveRate, DefaultCapacity)
	if err != nil {
		// defaults are constants inside the accepted range
		panic(err)
	}
	return v
}

// NewDuplicateNameValidatorSized sizes the filter for the expected number of
// names and a target false-positive rate.
func NewDuplicateNameValidatorSized(rate float64, capacity uint) (*DuplicateNameValidator, error) {
	f, err := NewScalableBloomFilter(rate, capacity)
	if err != nil {
		return nil, err
	}
	return NewDuplicateNameValidatorWithFilter(f), nil
}

// NewDuplicateNameValidatorWithFilter plugs in any MembershipFilter.
func NewDuplicateNameValidatorWithFilter(f MembershipFilter) *DuplicateNameValidator {
	return &DuplicateNameValidator{filter: f, candidates: make(map[string]uint8)}
}

func (v *DuplicateNameValidator) Code() string    { return "S007" }
func (v *DuplicateNameValidator) Name() string    { return "DuplicateNameValidator" }
func (v *DuplicateNameValidator) Level() Severity { return High }

// Insert records a name for pass 1.
func (v *DuplicateNameValidator) Insert(r *fastq.Record) {
	name := r.Name()
	if v.filter.TestAndAdd(name) {
		v.candidates[string(name)] = 0
	}
}

// IsEmpty reports whether pass 1 found no possible duplicates.
func (v *DuplicateNameValidator) IsEmpty() bool { return len(v.candidates) == 0 }

// Candidates returns the number of names awaiting verification.
func (v *DuplicateNameValidator) Candidates() int { return len(v.candidates) }

// Verify is pass 2. Without a prior pass 1 there are no candidates and every
// record passes.
func (v *DuplicateNameValidator) Verify(r *fastq.Record) error {
	name := r.Name()
	count, ok := v.candidates[string(name)]
	if !ok {
		return nil
	}
	if count >= 1 {
		return NewDiagnosis(
			v.Code(),
			v.Name(),
			fmt.Sprintf("Duplicate found: '%s'", lossyString(name)),
			FieldName,
			At(1),
		)
	}
	v.candidates[string(name)] = count + 1
	return nil
}

// lossyString decodes b as UTF-8, writing one U+FFFD per byte that does not
// start a valid sequence.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b) + 2)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}
