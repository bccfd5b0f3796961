package validate

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fqlint/core/fastq"
)

func seqRecord(seq string) *fastq.Record { return fastq.NewRecord("@r", seq, "+", "") }

func TestAlphabetNew(t *testing.T) {
	v := NewAlphabetValidator([]byte("cab"))
	assert.Equal(t, []byte("abc"), v.Alphabet())
	assert.True(t, v.Contains('a'))
	assert.False(t, v.Contains('d'))
}

func TestAlphabetDescriptor(t *testing.T) {
	v := DefaultAlphabetValidator()
	assert.Equal(t, "S002", v.Code())
	assert.Equal(t, "AlphabetValidator", v.Name())
	assert.Equal(t, Medium, v.Level())
}

func TestAlphabetValidate(t *testing.T) {
	v := DefaultAlphabetValidator()
	assert.NoError(t, v.Validate(seqRecord("AACCGGTTNNaaccggttnn")))
	assert.NoError(t, v.Validate(seqRecord("")))

	err := v.Validate(seqRecord("fqlib"))
	var d *Diagnosis
	require.True(t, errors.As(err, &d))
	assert.Equal(t, "Invalid character: f", d.Message)
	assert.Equal(t, FieldSequence, d.Field)
	col, ok := d.Position.Get()
	assert.True(t, ok)
	assert.Equal(t, 1, col)
}

func TestAlphabetSingleBadByteOffset(t *testing.T) {
	v := DefaultAlphabetValidator()
	for k := 1; k <= 12; k++ {
		b := []byte(strings.Repeat("ACGTN", 3)[:12])
		b[k-1] = 'X'
		err := v.Validate(seqRecord(string(b)))
		var d *Diagnosis
		require.True(t, errors.As(err, &d), "k=%d", k)
		col, _ := d.Position.Get()
		assert.Equal(t, k, col)
	}
}

func TestAlphabetReportsFirstViolation(t *testing.T) {
	err := DefaultAlphabetValidator().Validate(seqRecord("ACxyz"))
	var d *Diagnosis
	require.True(t, errors.As(err, &d))
	col, _ := d.Position.Get()
	assert.Equal(t, 3, col)
	assert.Equal(t, "Invalid character: x", d.Message)
}

func TestAlphabetIdempotentAndConcurrent(t *testing.T) {
	v := DefaultAlphabetValidator()
	r := seqRecord("ACGU")
	first := v.Validate(r)
	assert.Equal(t, first, v.Validate(r))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, first, v.Validate(r))
		}()
	}
	wg.Wait()
}

var _ Validator = (*AlphabetValidator)(nil)
