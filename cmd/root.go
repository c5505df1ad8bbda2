/* cmd/root.go */

package cmd

import (
	"errors"
	"os"

	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/maintenance"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_cli"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_err"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_io"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the whole CLI surface: no flags, no arguments, one sequence.
var RootCmd = &cobra.Command{
	Use:   "rhino-maintain",
	Short: "One-shot update and cleanup for Rhino Linux",
	Long: `rhino-maintain updates all installed packages and then purges orphaned
ones via rpk, streaming the package manager's output straight to the
terminal. It must be run as root, takes no arguments, and stops at the
first failing step, exiting with that step's exit code.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          rhino_cli.Wrap(runMaintenance),
}

func runMaintenance(rc *rhino_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	// Nothing may touch the filesystem before the privilege guard passes,
	// so the file-tee logger and telemetry come up only after it.
	if err := interaction.RequireRoot(rc, "rhino-maintain"); err != nil {
		return err
	}
	logger.InitializeWithFallback()
	rc.Log = logger.L().Named(rc.Command)
	if err := telemetry.Init("rhino-maintain"); err != nil {
		rc.Log.Warn("Telemetry disabled", zap.Error(err))
	}

	handler := rhino_cli.NewSignalHandler(rc.Ctx)
	defer handler.Stop()
	rc.Ctx = handler.Context()

	err := maintenance.NewRunner(rc).Run(rc)
	if handler.Interrupted() {
		return rhino_err.NewExpectedError(rhino_err.ErrInterrupted)
	}
	return err
}

// Execute runs the root command and owns the process exit code. Handlers
// only return errors; this is the single place that terminates the process.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		code := exitCode(err)
		logger.L().Error("Maintenance run failed",
			zap.Int("exit_code", code),
			zap.Error(err))
		_ = logger.Sync()
		os.Exit(code)
	}
	_ = logger.Sync()
}

// exitCode maps a run error to the process exit code: an interrupted run is
// 130, a failed external command passes its own code through, and everything
// else (missing privileges, launch failures) is 1.
func exitCode(err error) int {
	if errors.Is(err, rhino_err.ErrInterrupted) {
		return 130
	}
	if cmdErr, ok := rhino_err.AsCommandError(err); ok {
		return cmdErr.ExitCode
	}
	return 1
}
