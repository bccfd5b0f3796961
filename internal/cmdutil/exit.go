package cmdutil

import (
	"context"
	"errors"
)

// Exit codes shared by all subcommands.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// ExitError carries a process exit code. Err may be nil when the command has
// already reported everything it wants to say (e.g. lint findings).
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Exit wraps err with an exit code.
func Exit(code int, err error) error { return &ExitError{Code: code, Err: err} }

// CodeOf maps an error returned by a command to a process exit code.
// Errors without an explicit code are treated as usage errors, which is what
// cobra returns for bad flags and arguments.
func CodeOf(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitUsage
}

// Message returns the text to print for err, or "" when there is nothing to say.
func Message(err error) string {
	var ee *ExitError
	if errors.As(err, &ee) && ee.Err == nil {
		return ""
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
