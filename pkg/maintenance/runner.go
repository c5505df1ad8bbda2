// pkg/maintenance/runner.go

package maintenance

import (
	"context"
	"fmt"

	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/execute"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_err"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_io"
	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Launcher starts one external command and blocks until it terminates.
// Implemented by execLauncher in production and by spies in tests.
type Launcher interface {
	Launch(ctx context.Context, step Step) error
}

type execLauncher struct {
	log *zap.Logger
}

func (l *execLauncher) Launch(ctx context.Context, step Step) error {
	return execute.Run(ctx, execute.Options{
		Command: step.Command,
		Args:    step.Args,
		Logger:  l.log,
	})
}

// Runner walks the fixed maintenance plan: privilege guard, banner, the
// command steps in order, cache pruning, success banner. It never exits the
// process itself; failures propagate as errors so the command layer can
// centralize exit codes.
type Runner struct {
	launcher    Launcher
	ui          *UI
	plan        []Step
	cacheDir    string
	requireRoot func(rc *rhino_io.RuntimeContext) error
}

// NewRunner returns a Runner wired for real execution.
func NewRunner(rc *rhino_io.RuntimeContext) *Runner {
	return &Runner{
		launcher: &execLauncher{log: rc.Log},
		ui:       NewUI(),
		plan:     Plan(),
		cacheDir: DefaultCacheDir,
		requireRoot: func(rc *rhino_io.RuntimeContext) error {
			return interaction.RequireRoot(rc, "rhino-maintain")
		},
	}
}

// Run executes the whole maintenance sequence.
func (r *Runner) Run(rc *rhino_io.RuntimeContext) error {
	if err := r.requireRoot(rc); err != nil {
		return err
	}

	r.ui.Banner("Rhino Linux Update & Cleanup")
	rc.Log.Info("Starting maintenance run", zap.Int("steps", len(r.plan)))

	for _, step := range r.plan {
		if err := r.runStep(rc, step); err != nil {
			return err
		}
	}

	// Cache pruning is housekeeping on top of the package steps; its
	// failure must not change the run's exit code.
	if removed, err := PruneCache(rc.Log, r.cacheDir); err != nil {
		rc.Log.Warn("Cache pruning failed", zap.Error(err))
		r.ui.Warn(fmt.Sprintf("Could not prune package cache: %v", err))
	} else if removed > 0 {
		r.ui.Step(fmt.Sprintf("Removed %d cached archives from %s", removed, r.cacheDir))
	}

	r.ui.Success("Rhino Linux is up-to-date and squeaky-clean!")
	return nil
}

func (r *Runner) runStep(rc *rhino_io.RuntimeContext, step Step) error {
	if step.Description != "" {
		r.ui.Step(step.Description)
	}
	r.ui.Command(step.CommandLine())

	err := r.launcher.Launch(rc.Ctx, step)
	if err == nil {
		return nil
	}

	if cmdErr, ok := rhino_err.AsCommandError(err); ok {
		r.ui.Failure(fmt.Sprintf("Command failed (exit code %d)", cmdErr.ExitCode))
		rc.Log.Error("Maintenance step failed",
			zap.String("step", step.Description),
			zap.String("command", step.CommandLine()),
			zap.Int("exit_code", cmdErr.ExitCode))
		return err
	}

	r.ui.Failure(fmt.Sprintf("Command could not be started: %v", err))
	return cerr.Wrapf(err, "step %q", step.CommandLine())
}
