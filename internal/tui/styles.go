package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#2E7D32")
	dimColor    = lipgloss.Color("241")
	warnColor   = lipgloss.Color("#E65100")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(dimColor)
	warnStyle     = lipgloss.NewStyle().Foreground(warnColor)
	headingStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	dimStyle      = lipgloss.NewStyle().Foreground(dimColor)
	helpStyle     = lipgloss.NewStyle().Foreground(dimColor).MarginTop(1)
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)
