// core/fastq/writer.go
package fastq

import (
	"bufio"
	"io"
)

// Writer emits records as four newline-terminated lines.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 64<<10)}
}

func (w *Writer) Write(r *Record) error {
	if r == nil {
		return ErrNilRecord
	}
	for _, line := range [...][]byte{r.name, r.sequence, r.separator, r.quality} {
		if _, err := w.w.Write(line); err != nil {
			return err
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }
