// Package style holds the lipgloss styles the CLI uses for its own
// diagnostics. Rendered markup output never goes through these; they
// dress up error and warning reporting only.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode
// switching
var (
	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545",
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107",
		Dark:  "#FFD54F",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}

	CodeColor = lipgloss.AdaptiveColor{
		Light: "#007ACC",
		Dark:  "#3D9EFF",
	}
)

var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// CodeStyle marks error codes and source positions
	CodeStyle = lipgloss.NewStyle().
			Foreground(CodeColor)
)

// Error renders an error banner for the CLI
func Error(s string) string {
	return ErrorStyle.Render("error:") + " " + s
}

// Warning renders a warning banner for the CLI
func Warning(s string) string {
	return WarningStyle.Render("warning:") + " " + s
}
