package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is the top-level Bubble Tea model. It renders a tab bar and routes
// input to the active page; tab/shift+tab cycle pages, q quits.
type App struct {
	pages  []Page
	active int
	width  int
	height int
}

// NewApp creates the app with the given pages. The first page is active.
func NewApp(pages ...Page) *App {
	return &App{pages: pages}
}

func (a *App) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range a.pages {
		if cmd := p.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// All pages track dimensions so switching tabs needs no resize.
		var cmds []tea.Cmd
		for _, p := range a.pages {
			if cmd := p.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab", "right":
			a.active = (a.active + 1) % len(a.pages)
			return a, nil
		case "shift+tab", "left":
			a.active = (a.active - 1 + len(a.pages)) % len(a.pages)
			return a, nil
		}
	}

	if len(a.pages) == 0 {
		return a, nil
	}
	return a, a.pages[a.active].Update(msg)
}

func (a *App) View() string {
	if len(a.pages) == 0 {
		return "no pages"
	}

	tabs := make([]string, len(a.pages))
	for i, p := range a.pages {
		if i == a.active {
			tabs[i] = activeTabStyle.Render(p.Title())
		} else {
			tabs[i] = tabStyle.Render(p.Title())
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	contentHeight := a.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	content := a.pages[a.active].View(a.width, contentHeight)

	help := helpStyle.Render("tab: switch view • ↑/↓: scroll • q: quit")

	return strings.Join([]string{tabBar, content, help}, "\n")
}
