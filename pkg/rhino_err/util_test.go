package rhino_err

import (
	"errors"
	"fmt"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpectedError(t *testing.T) {
	if err := NewExpectedError(nil); err != nil {
		t.Error("NewExpectedError(nil) should return nil")
	}

	original := errors.New("missing config file")
	wrapped := NewExpectedError(original)
	require.NotNil(t, wrapped)
	assert.Equal(t, original.Error(), wrapped.Error())
	assert.True(t, errors.Is(wrapped, original), "wrapped error should unwrap to the original")
}

func TestIsExpectedUserError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"plain error", errors.New("boom"), false},
		{"expected error", NewExpectedError(errors.New("boom")), true},
		{"expected error wrapped again", fmt.Errorf("outer: %w", NewExpectedError(errors.New("boom"))), true},
		{"cerr-wrapped expected error", cerr.Wrap(NewExpectedError(ErrNotRoot), "guard"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsExpectedUserError(tt.err))
		})
	}
}

func TestAsCommandError(t *testing.T) {
	cmdErr := &CommandError{Command: "rpk update -y", ExitCode: 3}

	got, ok := AsCommandError(cerr.Wrap(cmdErr, "step failed"))
	require.True(t, ok)
	assert.Equal(t, 3, got.ExitCode)
	assert.Equal(t, "rpk update -y", got.Command)

	_, ok = AsCommandError(errors.New("not a command error"))
	assert.False(t, ok)

	_, ok = AsCommandError(nil)
	assert.False(t, ok)
}

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{Command: "rpk cleanup -y", ExitCode: 5}
	assert.Contains(t, err.Error(), "rpk cleanup -y")
	assert.Contains(t, err.Error(), "5")
}
