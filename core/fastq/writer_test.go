package fastq

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(NewRecord("@a:1", "ACGT", "+", "IIII")))
	require.NoError(t, w.Write(NewRecord("@a:2", "", "+", "")))
	require.NoError(t, w.Flush())
	assert.Equal(t, "@a:1\nACGT\n+\nIIII\n@a:2\n\n+\n\n", buf.String())

	recs := readAll(t, strings.NewReader(buf.String()))
	require.Len(t, recs, 2)
	assert.Equal(t, "@a:2", string(recs[1].Name()))
}

func TestWriterNilRecord(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	assert.ErrorIs(t, w.Write(nil), ErrNilRecord)
}

func TestCloneIsIndependent(t *testing.T) {
	r := NewRecord("@x", "AC", "+", "II")
	c := r.Clone()
	c.Sequence()[0] = 'T'
	assert.Equal(t, "AC", string(r.Sequence()))
}
