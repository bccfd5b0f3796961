// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"slices"
	"sort"

	"fqlint/internal/lint"
)

// Options tune presentation. Formats ignore what does not apply to them.
type Options struct {
	// Sort buffers all findings and orders them by path, record, code.
	Sort bool
	// Color enables ANSI colour in the text format.
	Color bool
}

// WriteFunc drains in and writes every finding to w.
type WriteFunc func(w io.Writer, in <-chan lint.Finding, opts Options) error

// Writer registry (format → handler). Formats register themselves in init().
var registry = map[string]WriteFunc{}

// Register adds or replaces a format (last wins).
func Register(format string, fn WriteFunc) { registry[format] = fn }

// Has reports whether format is registered.
func Has(format string) bool {
	_, ok := registry[format]
	return ok
}

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Start spins up a writer goroutine for format. Close the returned channel
// when done and then read the error channel exactly once. If the writer
// fails early it keeps draining the channel so producers never block.
func Start(out io.Writer, format string, opts Options, bufSize int) (chan<- lint.Finding, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan lint.Finding, bufSize)
	errCh := make(chan error, 1)

	fn, ok := registry[format]
	go func() {
		var err error
		if ok {
			err = fn(out, in, opts)
		} else {
			err = fmt.Errorf("unknown report format %q (have %v)", format, Formats())
		}
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// collect buffers the channel, sorting it when opts.Sort is set.
func collect(in <-chan lint.Finding, opts Options) []lint.Finding {
	var buf []lint.Finding
	for f := range in {
		buf = append(buf, f)
	}
	if opts.Sort {
		SortFindings(buf)
	}
	return buf
}

// LessFinding defines a stable order for findings (for --sort).
func LessFinding(a, b lint.Finding) int {
	if a.Path != b.Path {
		if a.Path < b.Path {
			return -1
		}
		return 1
	}
	if a.Record != b.Record {
		return a.Record - b.Record
	}
	if a.Diagnosis.Code < b.Diagnosis.Code {
		return -1
	}
	if a.Diagnosis.Code > b.Diagnosis.Code {
		return 1
	}
	return 0
}

func SortFindings(list []lint.Finding) { slices.SortStableFunc(list, LessFinding) }
