package fastq

import "errors"

var (
	// ErrIncompleteRecord is returned when input ends part-way through a record.
	ErrIncompleteRecord = errors.New("incomplete record")

	// ErrNilRecord is returned by Writer.Write for a nil record.
	ErrNilRecord = errors.New("nil record")
)
