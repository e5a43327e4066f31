package cli

import (
	"errors"
	"fmt"
	"io/fs"
)

// CLIError wraps lower-level errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return NewCLIError(
			"no roadmap found in this workspace",
			"Run 'skilltrail init' and then 'skilltrail import <file>' or 'skilltrail generate <topic>'",
			err,
		)
	}

	return err
}
