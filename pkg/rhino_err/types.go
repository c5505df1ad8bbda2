// pkg/rhino_err/types.go

package rhino_err

import (
	"errors"
	"fmt"
)

// ErrNotRoot is returned when the process is missing root privileges.
var ErrNotRoot = errors.New("this command must be run as root")

// ErrInterrupted is returned when a signal cancelled the maintenance run.
// The command layer maps it to exit code 130 (128 + SIGINT).
var ErrInterrupted = errors.New("operation cancelled by user")

// UserError marks an error as expected and recoverable by the user.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// CommandError reports an external command that ran and exited non-zero.
// The exit code is the child's own code and is propagated verbatim to the
// caller of the whole process.
type CommandError struct {
	Command  string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed (exit code %d)", e.Command, e.ExitCode)
}
