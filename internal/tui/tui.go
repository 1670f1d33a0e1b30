package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tiliavir/studyhub/internal/app"
)

// Run starts the full-screen shell on a and blocks until the user quits.
func Run(a *app.App) error {
	m := newAppModel(a)
	defer m.close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
