package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorHelp  = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
	colorTabBg = lipgloss.AdaptiveColor{Light: "27", Dark: "62"}
	colorTabFg = lipgloss.AdaptiveColor{Light: "255", Dark: "255"}

	styleTab       = lipgloss.NewStyle().Padding(0, 1).Foreground(colorHelp)
	styleTabActive = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorTabFg).Background(colorTabBg)
	styleCursor    = lipgloss.NewStyle().Bold(true).Foreground(colorTabBg)
	styleForm      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorTabBg).Padding(0, 1)
)
