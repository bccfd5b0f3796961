package lint

import (
	"log/slog"
	"slices"

	"fqlint/core/validate"
)

// Options selects and configures validators for a run.
type Options struct {
	// Alphabet permitted in sequence lines.
	Alphabet string
	// Level is the lowest severity that runs; validators below it are skipped.
	Level validate.Severity
	// Disabled lists validator codes to skip.
	Disabled []string
	// Threads for the stateless pass (0 = all CPUs).
	Threads int
	// FailFast stops the run at the first finding.
	FailFast bool

	FalsePositiveRate float64
	Capacity          uint

	Logger *slog.Logger
}

func (o Options) enabled(d validate.Descriptor) bool {
	return d.Level() >= o.Level && !slices.Contains(o.Disabled, d.Code())
}
