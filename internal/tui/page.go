// Package tui is an interactive browser over one analysis result: a
// processes page, a components page, and a summary chart.
package tui

import tea "github.com/charmbracelet/bubbletea"

// Page is one top-level screen of the report browser.
type Page interface {
	ID() string
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}
