// Package appshell wires a RunContext-style entry point to the process.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"fqlint/internal/cmdutil"
)

// Main runs run with a context cancelled on SIGINT/SIGTERM and exits with its
// code. No arguments shows help.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(execute(run, os.Args[1:]))
}

func execute(run func(context.Context, []string, io.Writer, io.Writer) int, argv []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitCanceled
	}
	return code
}
