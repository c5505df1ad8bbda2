// pkg/interaction/root.go
package interaction

import (
	"fmt"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_err"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// geteuid is swapped out in tests.
var geteuid = os.Geteuid

// RequireRoot checks if running as root and provides a helpful message if not.
//
// Package management needs root, so this runs before any other work. If the
// process is not running as root (EUID != 0) it logs the requirement, shows
// the exact command to re-run with sudo, and returns an expected user error.
func RequireRoot(rc *rhino_io.RuntimeContext, commandName string) error {
	logger := otelzap.Ctx(rc.Ctx)

	if geteuid() != 0 {
		logger.Info("Root privileges required",
			zap.String("command", commandName),
			zap.Int("current_uid", geteuid()))

		fmt.Fprintf(os.Stderr, "The '%s' command requires root privileges.\n", commandName)
		fmt.Fprintf(os.Stderr, "Please run with sudo:\n")
		fmt.Fprintf(os.Stderr, "  sudo %s\n", strings.Join(os.Args, " "))

		return rhino_err.NewExpectedError(rhino_err.ErrNotRoot)
	}

	return nil
}
