// pkg/maintenance/ui.go

package maintenance

import (
	"fmt"
	"io"
	"os"
)

// UI renders user-facing progress on stdout. Operational logs go through zap;
// this is the human-readable layer the tool exists to provide.
type UI struct {
	out    io.Writer
	styles Styles
}

// NewUI returns a UI writing to stdout with the default style table.
func NewUI() *UI {
	return &UI{out: os.Stdout, styles: DefaultStyles()}
}

// NewUIWithWriter returns a UI writing to w. Used by tests.
func NewUIWithWriter(w io.Writer) *UI {
	return &UI{out: w, styles: DefaultStyles()}
}

// Banner prints the one-time tool banner.
func (u *UI) Banner(msg string) {
	fmt.Fprintf(u.out, "\n%s\n", u.styles.Banner.Render("🦏 "+msg))
}

// Step prints a step description with the bold arrow marker.
func (u *UI) Step(msg string) {
	fmt.Fprintf(u.out, "\n%s\n", u.styles.Step.Render("➜ "+msg))
}

// Command prints the literal command line about to run.
func (u *UI) Command(cmdline string) {
	fmt.Fprintf(u.out, "%s\n", u.styles.Command.Render("▶ "+cmdline))
}

// Success prints the overall success line.
func (u *UI) Success(msg string) {
	fmt.Fprintf(u.out, "%s\n", u.styles.Success.Render("✅ "+msg))
}

// Warn prints a non-fatal warning.
func (u *UI) Warn(msg string) {
	fmt.Fprintf(u.out, "%s\n", u.styles.Warning.Render("⚠️  "+msg))
}

// Failure prints a failure line.
func (u *UI) Failure(msg string) {
	fmt.Fprintf(u.out, "%s\n", u.styles.Error.Render("❌ "+msg))
}
