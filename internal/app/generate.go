package app

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fqlint/internal/cmdutil"
	"fqlint/internal/generate"
	"fqlint/internal/logger"
	"fqlint/internal/writers"
)

func newGenerateCmd(e *env) *cobra.Command {
	var (
		opts   generate.Options
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write synthetic FASTQ records",
		Long:  `Generate random reads over ACGT with normally distributed Phred+33 qualities. Output is reproducible for a given --seed; a .gz output path is gzip-compressed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := e.loadConfig(cmd)
			if err != nil {
				return cmdutil.Exit(cmdutil.ExitUsage, err)
			}
			log := e.logger(cfg, logger.Component("generate"))

			w, closeOut, err := createOutput(output, e.stdout)
			if err != nil {
				return cmdutil.Exit(cmdutil.ExitIO, err)
			}
			start := time.Now()
			n, err := generate.Write(cmd.Context(), w, opts)
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			switch {
			case err == nil, writers.IsBrokenPipe(err):
			case errors.Is(err, generate.ErrInvalidOptions):
				return cmdutil.Exit(cmdutil.ExitUsage, err)
			default:
				return cmdutil.Exit(cmdutil.ExitIO, err)
			}
			log.Info("generated", logger.File(output), logger.Records(n), logger.Duration(time.Since(start)))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&opts.Records, "records", "n", 1000, "number of records")
	fl.IntVarP(&opts.Length, "length", "l", 100, "read length")
	fl.Uint64Var(&opts.Seed, "seed", 1, "random seed")
	fl.StringVar(&opts.Prefix, "prefix", "@read", "read name prefix")
	fl.IntVar(&opts.Duplicates, "duplicates", 0, "reuse the previous read name for every Nth record (0=never)")
	fl.StringVarP(&output, "output", "o", "-", "output file (- for stdout)")
	return cmd
}

// createOutput opens path for writing ("-" is stdout, *.gz is compressed).
// The returned close func flushes and closes everything it opened.
func createOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return stdout, func() error { return nil }, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return fh, fh.Close, nil
	}
	gz := gzip.NewWriter(fh)
	return gz, func() error {
		if err := gz.Close(); err != nil {
			_ = fh.Close()
			return fmt.Errorf("%s: %w", path, err)
		}
		return fh.Close()
	}, nil
}
