// core/fastq/reader.go
package fastq

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Reader parses FASTQ as strict four-line records. It does not check the
// '@' and '+' markers or the sequence/quality lengths; that belongs to
// validators. Both "\n" and "\r\n" line endings are accepted.
type Reader struct {
	r    *bufio.Reader
	line int
}

func NewReader(r io.Reader) *Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return &Reader{r: br}
	}
	return &Reader{r: bufio.NewReaderSize(r, 64<<10)}
}

// Line returns the number of lines consumed so far.
func (rd *Reader) Line() int { return rd.line }

// Read returns the next record, or io.EOF once the input is exhausted.
// Blank lines at the very end of the input are ignored. A blank line
// followed by more data is read as an empty name.
func (rd *Reader) Read() (*Record, error) {
	name, err := rd.readLine()
	if err != nil {
		return nil, err
	}
	if len(name) == 0 && rd.onlyBlankLinesLeft() {
		return nil, io.EOF
	}

	var lines [3][]byte
	for i := range lines {
		l, err := rd.readLine()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("line %d: %w", rd.line+1, ErrIncompleteRecord)
		}
		if err != nil {
			return nil, err
		}
		lines[i] = l
	}
	return FromBytes(name, lines[0], lines[1], lines[2]), nil
}

// onlyBlankLinesLeft peeks at what remains, as far as the buffer allows,
// without consuming it.
func (rd *Reader) onlyBlankLinesLeft() bool {
	for n := 1; ; n *= 2 {
		if n > rd.r.Size() {
			n = rd.r.Size()
		}
		b, err := rd.r.Peek(n)
		if bytes.ContainsFunc(b, func(r rune) bool { return r != '\n' && r != '\r' }) {
			return false
		}
		if errors.Is(err, io.EOF) {
			return true
		}
		if err != nil || n == rd.r.Size() {
			return false
		}
	}
}

func (rd *Reader) readLine() ([]byte, error) {
	line, err := rd.r.ReadBytes('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, err
	}
	rd.line++
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return line, nil
}
