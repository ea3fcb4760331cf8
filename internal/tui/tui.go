// Package tui is the interactive dashboard: the full admin page as a
// terminal app. It renders the in-memory document, fires form
// submissions against the server and reconciles responses into the
// visible state, the same control flow the web page's script layer runs.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard TUI and blocks until the user quits.
func Run(client Client, prefs UIPrefs) error {
	applyColorProfilePreference()
	applyBackgroundPreference()
	applyGlyphPreference()

	saved := ""
	if prefs != nil {
		saved = prefs.Theme(context.Background())
	}
	applyThemePreference(saved)

	m := newAppModel(client, prefs)
	m.snapshotSeq = 1

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
