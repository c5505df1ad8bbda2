// pkg/maintenance/styles.go

package maintenance

import (
	"github.com/charmbracelet/lipgloss"
)

// Color roles for console output
var (
	ColorBanner  = lipgloss.Color("5") // Magenta
	ColorStep    = lipgloss.Color("4") // Blue
	ColorCommand = lipgloss.Color("6") // Cyan
	ColorSuccess = lipgloss.Color("2") // Green
	ColorWarning = lipgloss.Color("3") // Yellow
	ColorError   = lipgloss.Color("1") // Red
)

// Styles groups the lipgloss styles for each output role.
type Styles struct {
	Banner  lipgloss.Style
	Step    lipgloss.Style
	Command lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the standard style table.
func DefaultStyles() Styles {
	return Styles{
		Banner:  lipgloss.NewStyle().Foreground(ColorBanner).Bold(true),
		Step:    lipgloss.NewStyle().Foreground(ColorStep).Bold(true),
		Command: lipgloss.NewStyle().Foreground(ColorCommand),
		Success: lipgloss.NewStyle().Foreground(ColorSuccess),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Error:   lipgloss.NewStyle().Foreground(ColorError),
	}
}
