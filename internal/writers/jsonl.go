package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"fqlint/internal/lint"
)

func init() {
	Register("jsonl", func(w io.Writer, in <-chan lint.Finding, opts Options) error {
		return stream(w, in, opts, func(bw *bufio.Writer) encoder { return json.NewEncoder(bw) })
	})
	Register("msgpack", func(w io.Writer, in <-chan lint.Finding, opts Options) error {
		return stream(w, in, opts, func(bw *bufio.Writer) encoder { return msgpack.NewEncoder(bw) })
	})
}

// Reuse a 64 KiB buffered writer across streaming writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

type encoder interface{ Encode(v any) error }

// stream writes one encoded api.FindingV1 per finding: a JSON line for jsonl,
// a concatenated msgpack map for msgpack.
func stream(out io.Writer, in <-chan lint.Finding, opts Options, newEnc func(*bufio.Writer) encoder) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()
	enc := newEnc(bw)

	if opts.Sort {
		for _, f := range collect(in, opts) {
			if err := enc.Encode(ToAPIFinding(f)); err != nil {
				return err
			}
		}
	} else {
		for f := range in {
			if err := enc.Encode(ToAPIFinding(f)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
