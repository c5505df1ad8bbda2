package rhino_io

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	rc := NewContext(context.Background(), "maintain")
	require.NotNil(t, rc)
	assert.NotNil(t, rc.Ctx)
	assert.NotNil(t, rc.Log)
	assert.NotNil(t, rc.Span)
	assert.Equal(t, "maintain", rc.Command)
	assert.False(t, rc.Timestamp.IsZero())
}

func TestEndIsSafeOnBothOutcomes(t *testing.T) {
	var nilErr error
	rc := NewContext(context.Background(), "maintain")
	rc.End(&nilErr)

	failed := errors.New("step failed")
	rc = NewContext(context.Background(), "maintain")
	rc.End(&failed)
}

func TestHandlePanicConvertsToError(t *testing.T) {
	rc := NewContext(context.Background(), "maintain")

	var err error
	func() {
		defer rc.HandlePanic(&err)
		panic("boom")
	}()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
