// pkg/execute/execute.go

package execute

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_err"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Run executes a command interactively: the child's stdin is /dev/null (it
// must never wait on input) and its stdout/stderr are the parent's own, so
// package-manager output interleaves live on the terminal with no buffering
// owned by us.
//
// Failure modes are kept distinct:
//   - the binary could not be started at all: a wrapped launch error
//   - the child ran and exited non-zero: *rhino_err.CommandError carrying
//     the child's exit code (1 if the child was killed by a signal)
func Run(ctx context.Context, opts Options) error {
	cmdStr := buildCommandString(opts.Command, opts.Args...)

	logger := opts.Logger
	if logger == nil {
		logger = zap.L()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := telemetry.Start(ctx, "execute.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("command", opts.Command),
		attribute.String("args", strings.Join(opts.Args, " ")),
	)

	if opts.DryRun {
		logger.Info("Dry run mode - command not executed", zap.String("command", cmdStr))
		return nil
	}

	logger.Info("Starting execution", zap.String("command", cmdStr))

	cmd := exec.CommandContext(ctx, opts.Command, opts.Args...)
	cmd.Stdin = nil
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		logger.Info("Execution succeeded", zap.String("command", cmdStr))
		return nil
	}

	span.RecordError(err)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal; no exit code to propagate.
			code = 1
		}
		logger.Error("Execution failed",
			zap.String("command", cmdStr),
			zap.Int("exit_code", code),
		)
		return &rhino_err.CommandError{Command: cmdStr, ExitCode: code}
	}

	logger.Error("Execution could not start", zap.String("command", cmdStr), zap.Error(err))
	return cerr.Wrapf(err, "failed to launch %q", opts.Command)
}
