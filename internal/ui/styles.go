package ui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorError   = lipgloss.Color("196") // Red
	ColorWarning = lipgloss.Color("214") // Orange
	ColorInfo    = lipgloss.Color("42")  // Green
	ColorMuted   = lipgloss.Color("241") // Dim gray
)

// labelStyles builds the per-level label styles for one renderer, so color
// is decided by the destination writer rather than by os.Stdout.
type labelStyles struct {
	errorLabel   lipgloss.Style
	warningLabel lipgloss.Style
	infoLabel    lipgloss.Style
	debugLine    lipgloss.Style
}

func newLabelStyles(r *lipgloss.Renderer) labelStyles {
	return labelStyles{
		errorLabel:   r.NewStyle().Foreground(ColorError).Bold(true),
		warningLabel: r.NewStyle().Foreground(ColorWarning).Bold(true),
		infoLabel:    r.NewStyle().Foreground(ColorInfo),
		debugLine:    r.NewStyle().Foreground(ColorMuted).Faint(true),
	}
}
