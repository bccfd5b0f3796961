// core/fastq/stream.go
package fastq

import (
	"context"
	"errors"
	"io"
)

// StreamCtx reads records from r and calls emit for each, in input order.
// It returns promptly when ctx is done. A non-nil error from emit stops the
// scan and is returned as-is.
func StreamCtx(ctx context.Context, r io.Reader, emit func(*Record) error) error {
	rd := NewReader(r)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}

// StreamPathCtx opens path (gzip and "-" aware) and streams its records.
func StreamPathCtx(ctx context.Context, path string, emit func(*Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}
