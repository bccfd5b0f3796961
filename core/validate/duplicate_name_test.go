package validate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fqlint/core/fastq"
)

func nameRecord(name string) *fastq.Record { return fastq.NewRecord(name, "", "+", "") }

// runTwoPass inserts every name, then verifies them in the same order and
// reports which positions failed.
func runTwoPass(v StatefulValidator, names []string) []bool {
	for _, n := range names {
		v.Insert(nameRecord(n))
	}
	failed := make([]bool, len(names))
	for i, n := range names {
		failed[i] = v.Verify(nameRecord(n)) != nil
	}
	return failed
}

// alwaysPresent reports every key as already seen: the worst possible filter.
type alwaysPresent struct{}

func (alwaysPresent) TestAndAdd([]byte) bool { return true }
func (alwaysPresent) Test([]byte) bool       { return true }

func TestDuplicateDescriptor(t *testing.T) {
	v := NewDuplicateNameValidator()
	assert.Equal(t, "S007", v.Code())
	assert.Equal(t, "DuplicateNameValidator", v.Name())
	assert.Equal(t, High, v.Level())
}

func TestDuplicateScenario(t *testing.T) {
	v := NewDuplicateNameValidator()
	failed := runTwoPass(v, []string{"r1", "r2", "r1", "r3", "r1"})
	assert.Equal(t, []bool{false, false, true, false, true}, failed)
}

func TestDuplicateCandidatesAfterPassOne(t *testing.T) {
	v := NewDuplicateNameValidator()
	assert.True(t, v.IsEmpty())
	for _, n := range []string{"r1", "r2", "r1", "r3", "r1"} {
		v.Insert(nameRecord(n))
	}
	assert.False(t, v.IsEmpty())
	assert.Equal(t, 1, v.Candidates())
}

func TestDuplicateDiagnosis(t *testing.T) {
	v := NewDuplicateNameValidator()
	b := nameRecord("@fqlib:1")
	d := nameRecord("@fqlib:2")
	v.Insert(b)
	v.Insert(d)
	v.Insert(d)

	assert.NoError(t, v.Verify(b))
	assert.NoError(t, v.Verify(d))
	err := v.Verify(d)

	var diag *Diagnosis
	require.True(t, errors.As(err, &diag))
	assert.Equal(t, "Duplicate found: '@fqlib:2'", diag.Message)
	assert.Equal(t, FieldName, diag.Field)
	col, ok := diag.Position.Get()
	assert.True(t, ok)
	assert.Equal(t, 1, col)
}

func TestDuplicateExactlyOneOccurrencePasses(t *testing.T) {
	for n := 2; n <= 6; n++ {
		var names []string
		for i := 0; i < 20; i++ {
			if i%3 == 0 && i/3 < n {
				names = append(names, "X")
			}
			names = append(names, fmt.Sprintf("u%d", i))
		}

		failed := runTwoPass(NewDuplicateNameValidator(), names)
		passX, failX := 0, 0
		for i, name := range names {
			switch {
			case name == "X" && failed[i]:
				failX++
			case name == "X":
				passX++
			default:
				assert.False(t, failed[i], "unique name %q must pass", name)
			}
		}
		assert.Equal(t, 1, passX, "n=%d", n)
		assert.Equal(t, n-1, failX, "n=%d", n)
	}
}

func TestDuplicateNoFalsePositivesFromFilter(t *testing.T) {
	v := NewDuplicateNameValidatorWithFilter(alwaysPresent{})
	names := []string{"a", "b", "c", "a"}
	failed := runTwoPass(v, names)
	assert.Equal(t, []bool{false, false, false, true}, failed)
	assert.Equal(t, 3, v.Candidates())
}

func TestDuplicateTrueRepeatsAlwaysBecomeCandidates(t *testing.T) {
	v, err := NewDuplicateNameValidatorSized(0.001, 64)
	require.NoError(t, err)
	for i := 0; i < 2000; i++ {
		v.Insert(nameRecord(fmt.Sprintf("read:%d", i)))
	}
	for i := 0; i < 2000; i += 97 {
		v.Insert(nameRecord(fmt.Sprintf("read:%d", i)))
	}
	for i := 0; i < 2000; i += 97 {
		_, ok := v.candidates[fmt.Sprintf("read:%d", i)]
		assert.True(t, ok, "read:%d", i)
	}
}

func TestDuplicateVerifyWithoutInsert(t *testing.T) {
	v := NewDuplicateNameValidator()
	assert.NoError(t, v.Verify(nameRecord("r1")))
	assert.NoError(t, v.Verify(nameRecord("r1")))
}

func TestDuplicateEmptyAndInvalidNames(t *testing.T) {
	v := NewDuplicateNameValidator()
	failed := runTwoPass(v, []string{"", "", "\xff\xfe"})
	assert.Equal(t, []bool{false, true, false}, failed)

	v = NewDuplicateNameValidator()
	v.Insert(nameRecord("\xffa"))
	v.Insert(nameRecord("\xffa"))
	require.NoError(t, v.Verify(nameRecord("\xffa")))
	err := v.Verify(nameRecord("\xffa"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'�a'")
}

func TestDuplicateMessageReplacesEachInvalidByte(t *testing.T) {
	for name, want := range map[string]string{
		"\xff\xfe":         "Duplicate found: '\uFFFD\uFFFD'",
		"a\xffb\xfe\xfdc": "Duplicate found: 'a\uFFFDb\uFFFD\uFFFDc'",
		"r\u00e9ad":       "Duplicate found: 'r\u00e9ad'",
	} {
		v := NewDuplicateNameValidator()
		failed := runTwoPass(v, []string{name, name})
		assert.Equal(t, []bool{false, true}, failed, "%q", name)

		v = NewDuplicateNameValidator()
		v.Insert(nameRecord(name))
		v.Insert(nameRecord(name))
		require.NoError(t, v.Verify(nameRecord(name)))
		var d *Diagnosis
		require.ErrorAs(t, v.Verify(nameRecord(name)), &d)
		assert.Equal(t, want, d.Message, "%q", name)
	}
}

func TestDuplicateSizedRejectsBadParams(t *testing.T) {
	_, err := NewDuplicateNameValidatorSized(0, 10)
	assert.ErrorIs(t, err, ErrInvalidFilterParams)
}

var _ StatefulValidator = (*DuplicateNameValidator)(nil)
