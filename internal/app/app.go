// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fqlint/internal/cmdutil"
	"fqlint/internal/config"
	"fqlint/internal/logger"
	"fqlint/internal/version"
)

// globalFlags are the root persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	color      string
	quiet      bool
	logLevel   string
	logFormat  string
}

// env carries what subcommands need from the process.
type env struct {
	stdout, stderr io.Writer
	flags          *globalFlags
}

// loadConfig layers the config file and environment, then the global flags
// that were set explicitly.
func (e *env) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(e.flags.configPath)
	if err != nil {
		return cfg, err
	}
	root := cmd.Root().PersistentFlags()
	if root.Changed("color") {
		cfg.Output.Color = e.flags.color
	}
	if root.Changed("log-level") {
		cfg.Log.Level = e.flags.logLevel
	}
	if root.Changed("log-format") {
		cfg.Log.Format = e.flags.logFormat
	}
	return cfg, cfg.Validate()
}

func (e *env) logger(cfg config.Config, attrs ...slog.Attr) *slog.Logger {
	// both were checked by cfg.Validate
	lvl, _ := logger.ParseLevel(cfg.Log.Level)
	f, _ := logger.ParseFormat(cfg.Log.Format)
	return logger.New(
		logger.WithLevel(lvl),
		logger.WithFormat(f),
		logger.WithOutput(e.stderr),
		logger.WithAttr(attrs...),
	)
}

// colorEnabled resolves auto|on|off against the destination.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	e := &env{stdout: stdout, stderr: stderr, flags: &globalFlags{}}
	root := &cobra.Command{
		Use:           "fqlint",
		Short:         "Validate FASTQ records",
		Long:          `fqlint checks FASTQ files record by record and reports problems such as invalid sequence characters and duplicate read names`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Root().PersistentFlags().Changed("color") {
				switch e.flags.color {
				case "on":
					color.NoColor = false
				case "off":
					color.NoColor = true
				case "auto":
				default:
					return fmt.Errorf("unknown --color %q (auto|on|off)", e.flags.color)
				}
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&e.flags.configPath, "config", "", "TOML config file")
	pf.StringVar(&e.flags.color, "color", "auto", "colorize output (auto|on|off)")
	pf.BoolVarP(&e.flags.quiet, "quiet", "q", false, "suppress warnings and the summary line")
	pf.StringVar(&e.flags.logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	pf.StringVar(&e.flags.logFormat, "log-format", "text", "log format (text|json)")

	root.AddCommand(newLintCmd(e), newGenerateCmd(e), newVersionCmd(e))
	return root
}

// RunContext executes the fqlint CLI and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(ctx)
	if msg := cmdutil.Message(err); msg != "" {
		_, _ = fmt.Fprintln(stderr, "fqlint:", msg)
	}
	return cmdutil.CodeOf(err)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
