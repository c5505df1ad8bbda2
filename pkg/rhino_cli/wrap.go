// pkg/rhino_cli/wrap.go

package rhino_cli

import (
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_err"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/rhino_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Wrap adapts a RuntimeContext handler to a cobra RunE, adding panic
// recovery and context lifecycle (span + outcome logging).
func Wrap(fn func(rc *rhino_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger.InitFallback()

		rc := rhino_io.NewContext(cmd.Context(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		err = fn(rc, cmd, args)
		if err != nil && !rhino_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
