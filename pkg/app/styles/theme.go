package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary   = lipgloss.Color("#82AAFF")
	Secondary = lipgloss.Color("#C792EA")
	Success   = lipgloss.Color("#C3E88D")
	Warning   = lipgloss.Color("#FFCB6B")
	Error     = lipgloss.Color("#F07178")
	Muted     = lipgloss.Color("#546E7A")
)

var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Selected list row
	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Error message
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error)

	// Help line at the bottom of a screen
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginTop(1)
)
