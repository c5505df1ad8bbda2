package maintenance

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_err"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyLauncher records launches and fails on demand.
type spyLauncher struct {
	launched []Step
	failures map[int]error // index in launch order -> error to return
}

func (s *spyLauncher) Launch(ctx context.Context, step Step) error {
	idx := len(s.launched)
	s.launched = append(s.launched, step)
	if err, ok := s.failures[idx]; ok {
		return err
	}
	return nil
}

func newTestRunner(t *testing.T, spy *spyLauncher, asRoot bool) (*Runner, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &Runner{
		launcher: spy,
		ui:       NewUIWithWriter(out),
		plan:     Plan(),
		cacheDir: t.TempDir(),
		requireRoot: func(rc *rhino_io.RuntimeContext) error {
			if asRoot {
				return nil
			}
			return rhino_err.NewExpectedError(rhino_err.ErrNotRoot)
		},
	}, out
}

func TestRunWithoutRootLaunchesNothing(t *testing.T) {
	spy := &spyLauncher{}
	runner, out := newTestRunner(t, spy, false)

	rc := rhino_io.NewContext(context.Background(), "maintain")
	err := runner.Run(rc)

	require.Error(t, err)
	assert.True(t, rhino_err.IsExpectedUserError(err))
	assert.Empty(t, spy.launched, "no external command may run without root")
	assert.NotContains(t, out.String(), "Rhino Linux Update & Cleanup",
		"banner must not appear when the privilege guard fails")
}

func TestRunSuccessLaunchesBothStepsInOrder(t *testing.T) {
	spy := &spyLauncher{}
	runner, out := newTestRunner(t, spy, true)

	rc := rhino_io.NewContext(context.Background(), "maintain")
	err := runner.Run(rc)

	require.NoError(t, err)
	require.Len(t, spy.launched, 2)

	update, cleanup := spy.launched[0], spy.launched[1]
	assert.Equal(t, "rpk", update.Command)
	assert.Equal(t, []string{"update", "-y"}, update.Args)
	assert.Equal(t, "rpk", cleanup.Command)
	assert.Equal(t, []string{"cleanup", "-y"}, cleanup.Args)

	assert.Contains(t, out.String(), "Rhino Linux Update & Cleanup")
	assert.Contains(t, out.String(), "Updating all packages")
	assert.Contains(t, out.String(), "rpk update -y")
	assert.Contains(t, out.String(), "Purging orphaned packages")
	assert.Contains(t, out.String(), "rpk cleanup -y")
	assert.Contains(t, out.String(), "up-to-date and squeaky-clean")
}

func TestRunFirstStepFailureStopsSequence(t *testing.T) {
	spy := &spyLauncher{failures: map[int]error{
		0: &rhino_err.CommandError{Command: "rpk update -y", ExitCode: 3},
	}}
	runner, out := newTestRunner(t, spy, true)

	rc := rhino_io.NewContext(context.Background(), "maintain")
	err := runner.Run(rc)

	require.Error(t, err)
	cmdErr, ok := rhino_err.AsCommandError(err)
	require.True(t, ok)
	assert.Equal(t, 3, cmdErr.ExitCode)

	assert.Len(t, spy.launched, 1, "second step must never start after a failure")
	assert.Contains(t, out.String(), "exit code 3")
	assert.NotContains(t, out.String(), "squeaky-clean",
		"success banner must not appear on a failing path")
}

func TestRunSecondStepFailurePropagatesItsCode(t *testing.T) {
	spy := &spyLauncher{failures: map[int]error{
		1: &rhino_err.CommandError{Command: "rpk cleanup -y", ExitCode: 5},
	}}
	runner, out := newTestRunner(t, spy, true)

	rc := rhino_io.NewContext(context.Background(), "maintain")
	err := runner.Run(rc)

	require.Error(t, err)
	cmdErr, ok := rhino_err.AsCommandError(err)
	require.True(t, ok)
	assert.Equal(t, 5, cmdErr.ExitCode)

	assert.Len(t, spy.launched, 2, "first step already succeeded")
	assert.NotContains(t, out.String(), "squeaky-clean")
}

func TestRunLaunchFailureIsNotACommandError(t *testing.T) {
	spy := &spyLauncher{failures: map[int]error{
		0: cerr.Wrap(errors.New("executable file not found in $PATH"), "failed to launch \"rpk\""),
	}}
	runner, out := newTestRunner(t, spy, true)

	rc := rhino_io.NewContext(context.Background(), "maintain")
	err := runner.Run(rc)

	require.Error(t, err)
	_, ok := rhino_err.AsCommandError(err)
	assert.False(t, ok)

	assert.Len(t, spy.launched, 1)
	assert.Contains(t, out.String(), "could not be started")
	assert.NotContains(t, out.String(), "squeaky-clean")
}

func TestRunEmptyDescriptionSkipsStepHeading(t *testing.T) {
	spy := &spyLauncher{}
	runner, out := newTestRunner(t, spy, true)
	runner.plan = []Step{{Command: "rpk", Args: []string{"update", "-y"}}}

	rc := rhino_io.NewContext(context.Background(), "maintain")
	require.NoError(t, runner.Run(rc))

	assert.NotContains(t, out.String(), "➜",
		"no step marker when the description is empty")
	assert.Contains(t, out.String(), "▶")
}

func TestRunCachePruneFailureDoesNotFailRun(t *testing.T) {
	spy := &spyLauncher{}
	runner, out := newTestRunner(t, spy, true)

	// Point the pruner at a file to force a "not a directory" error.
	f := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.WriteFile(f, []byte("not a dir"), 0o600))
	runner.cacheDir = f

	rc := rhino_io.NewContext(context.Background(), "maintain")
	err := runner.Run(rc)

	require.NoError(t, err, "pruning is housekeeping, not a maintenance failure")
	assert.Contains(t, out.String(), "Could not prune package cache")
	assert.Contains(t, out.String(), "squeaky-clean")
}
