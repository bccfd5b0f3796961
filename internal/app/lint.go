package app

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"fortio.org/safecast"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fqlint/core/validate"
	"fqlint/internal/cmdutil"
	"fqlint/internal/config"
	"fqlint/internal/lint"
	"fqlint/internal/logger"
	"fqlint/internal/writers"
)

type lintFlags struct {
	alphabet string
	level    string
	disable  []string
	threads  int
	failFast bool
	fpRate   float64
	capacity int
	format   string
	sort     bool
}

func newLintCmd(e *env) *cobra.Command {
	f := &lintFlags{}
	cmd := &cobra.Command{
		Use:   "lint [flags] <file.fastq[.gz]|->...",
		Short: "Validate FASTQ files",
		Long: `Validate every record of the given FASTQ files ("-" reads stdin).
Exit status is 0 when clean, 1 when any finding was reported, 2 for usage or
config errors and 3 for unreadable or malformed input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, e, f, args)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.alphabet, "alphabet", validate.DefaultAlphabet, "permitted sequence characters")
	fl.StringVar(&f.level, "level", "low", "lowest validator severity to run (low|medium|high)")
	fl.StringSliceVar(&f.disable, "disable", nil, "validator codes to skip (e.g. S007)")
	fl.IntVarP(&f.threads, "threads", "t", 0, "workers for single-pass checks (0=all CPUs)")
	fl.BoolVar(&f.failFast, "fail-fast", false, "stop at the first finding")
	fl.Float64Var(&f.fpRate, "fp-rate", validate.DefaultFalsePositiveRate, "duplicate filter false-positive rate")
	fl.IntVar(&f.capacity, "capacity", validate.DefaultCapacity, "expected number of distinct read names")
	fl.StringVarP(&f.format, "format", "f", "text", "report format ("+strings.Join(writers.Formats(), "|")+")")
	fl.BoolVar(&f.sort, "sort", false, "buffer and sort findings by file, record, code")
	return cmd
}

// apply copies explicitly set flags over cfg.
func (f *lintFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("alphabet") {
		cfg.Lint.Alphabet = f.alphabet
	}
	if fl.Changed("level") {
		lvl, err := validate.ParseSeverity(f.level)
		if err != nil {
			return fmt.Errorf("--level: %w", err)
		}
		cfg.Lint.Level = lvl
	}
	if fl.Changed("disable") {
		cfg.Lint.Disable = f.disable
	}
	if fl.Changed("threads") {
		cfg.Lint.Threads = f.threads
	}
	if fl.Changed("fail-fast") {
		cfg.Lint.FailFast = f.failFast
	}
	if fl.Changed("fp-rate") {
		cfg.Duplicates.FalsePositiveRate = f.fpRate
	}
	if fl.Changed("capacity") {
		c, err := safecast.Conv[uint](f.capacity)
		if err != nil {
			return fmt.Errorf("--capacity: %w", err)
		}
		cfg.Duplicates.Capacity = c
	}
	if fl.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fl.Changed("sort") {
		cfg.Output.Sort = f.sort
	}
	return nil
}

func runLint(cmd *cobra.Command, e *env, f *lintFlags, paths []string) error {
	cfg, err := e.loadConfig(cmd)
	if err != nil {
		return cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	if err := f.apply(cmd, &cfg); err != nil {
		return cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	if err := cfg.Validate(); err != nil {
		return cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	if !writers.Has(cfg.Output.Format) {
		return cmdutil.Exit(cmdutil.ExitUsage,
			fmt.Errorf("unknown --format %q (have %s)", cfg.Output.Format, strings.Join(writers.Formats(), ", ")))
	}

	log := e.logger(cfg, logger.RunID(uuid.NewString()))
	linter, err := lint.New(lint.Options{
		Alphabet:          cfg.Lint.Alphabet,
		Level:             cfg.Lint.Level,
		Disabled:          cfg.Lint.Disable,
		Threads:           cfg.Lint.Threads,
		FailFast:          cfg.Lint.FailFast,
		FalsePositiveRate: cfg.Duplicates.FalsePositiveRate,
		Capacity:          cfg.Duplicates.Capacity,
		Logger:            log,
	})
	if err != nil {
		return cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	codes := linter.Codes()
	if len(codes) == 0 {
		cmdutil.Warnf(e.stderr, e.flags.quiet, "no validators enabled at level %s", cfg.Lint.Level)
	}
	log.Info("lint start", slog.Any("validators", codes), slog.Any("files", paths))

	in, done := writers.Start(e.stdout, cfg.Output.Format,
		writers.Options{Sort: cfg.Output.Sort, Color: colorEnabled(cfg.Output.Color, e.stdout)}, 256)
	report := func(f lint.Finding) error {
		in <- f
		return nil
	}

	start := time.Now()
	total := lint.Summary{ByCode: map[string]int{}}
	var runErr error
	for _, p := range paths {
		sum, err := linter.Run(cmd.Context(), p, report)
		total.Records += sum.Records
		total.Findings += sum.Findings
		for k, v := range sum.ByCode {
			total.ByCode[k] += v
		}
		total.Highest = max(total.Highest, sum.Highest)
		if err != nil {
			log.Error("lint failed", logger.File(p), logger.Error(err))
			runErr = err
			break
		}
		if sum.Stopped {
			break
		}
	}
	close(in)
	werr := <-done
	log.Info("lint done", logger.Records(total.Records), slog.Int("findings", total.Findings), logger.Duration(time.Since(start)))

	if runErr != nil {
		return cmdutil.Exit(cmdutil.ExitIO, runErr)
	}
	if werr != nil && !writers.IsBrokenPipe(werr) {
		return cmdutil.Exit(cmdutil.ExitIO, werr)
	}
	if !e.flags.quiet {
		_, _ = fmt.Fprintln(e.stderr, summaryLine(total))
	}
	if total.HasFindings() {
		return cmdutil.Exit(cmdutil.ExitFindings, nil)
	}
	return nil
}

// summaryLine renders e.g. "3 records, 2 findings (S007: 2)".
func summaryLine(s lint.Summary) string {
	line := fmt.Sprintf("%d records, %d findings", s.Records, s.Findings)
	if len(s.ByCode) == 0 {
		return line
	}
	codes := make([]string, 0, len(s.ByCode))
	for c := range s.ByCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("%s: %d", c, s.ByCode[c])
	}
	return line + " (" + strings.Join(parts, ", ") + ")"
}
