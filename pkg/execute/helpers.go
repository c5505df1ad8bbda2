// pkg/execute/helpers.go

package execute

import (
	"strings"

	"go.uber.org/zap"
)

// Options describes a single external command invocation.
type Options struct {
	Command string
	Args    []string
	DryRun  bool
	Logger  *zap.Logger
}

func buildCommandString(command string, args ...string) string {
	if len(args) == 0 {
		return command
	}
	return command + " " + strings.Join(args, " ")
}
