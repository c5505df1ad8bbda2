// pkg/maintenance/step.go

package maintenance

import "strings"

// Step is one external command in the maintenance sequence: the program and
// its arguments, plus a human-readable description. Steps run strictly in
// declared order; a later step never starts unless all earlier ones succeeded.
type Step struct {
	Description string
	Command     string
	Args        []string
}

// CommandLine returns the literal command line for display.
func (s Step) CommandLine() string {
	if len(s.Args) == 0 {
		return s.Command
	}
	return s.Command + " " + strings.Join(s.Args, " ")
}

// PackageManager is the external package management tool this runner drives.
// Its behavior, output, and failure semantics are entirely delegated to it.
const PackageManager = "rpk"

// autoConfirm tells rpk to proceed without interactive prompts.
const autoConfirm = "-y"

// Plan returns the fixed, ordered maintenance sequence.
func Plan() []Step {
	return []Step{
		{
			Description: "Updating all packages …",
			Command:     PackageManager,
			Args:        []string{"update", autoConfirm},
		},
		{
			Description: "Purging orphaned packages …",
			Command:     PackageManager,
			Args:        []string{"cleanup", autoConfirm},
		},
	}
}
