package console

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
)

// RenderError styles a fatal, session-level error message for the terminal.
func RenderError(msg string) string {
	return errorStyle.Render(msg)
}
