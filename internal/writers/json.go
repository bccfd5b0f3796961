package writers

import (
	"encoding/json"
	"io"

	"fqlint/internal/lint"
	"fqlint/pkg/api"
)

func init() { Register("json", writeJSON) }

// writeJSON buffers everything and writes one indented array ([] when empty).
func writeJSON(w io.Writer, in <-chan lint.Finding, opts Options) error {
	list := collect(in, opts)
	out := make([]api.FindingV1, 0, len(list))
	for _, f := range list {
		out = append(out, ToAPIFinding(f))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
