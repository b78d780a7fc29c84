package render

import "github.com/charmbracelet/lipgloss"

// Palette carried over from the web front end.
const (
	colorBuy   = lipgloss.Color("#00b894")
	colorHold  = lipgloss.Color("#fdcb6e")
	colorSell  = lipgloss.Color("#e17055")
	colorInfo  = lipgloss.Color("#74b9ff")
	colorMuted = lipgloss.Color("#6B7280")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorInfo).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorInfo).
			Padding(0, 2)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorInfo).
				MarginTop(1)

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1F2937")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	linkStyle = lipgloss.NewStyle().
			Foreground(colorInfo).
			Underline(true)

	cellLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	cellValueStyle = lipgloss.NewStyle().
			Bold(true)

	relevanceStyle = lipgloss.NewStyle().
			Foreground(colorBuy).
			Bold(true)
)
