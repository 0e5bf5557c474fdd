package browse

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("208") // Orange
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("196") // Red

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(10)

	classStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(primaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
