// pkg/rhino_err/util.go

package rhino_err

import (
	"errors"
)

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

// AsCommandError extracts a CommandError from an error chain, if present.
func AsCommandError(err error) (*CommandError, bool) {
	var e *CommandError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
