package tui

import (
	"sort"

	"github.com/aarelaponin/archi-reports/internal/model"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// ComponentsPage lists application components with the processes they serve.
type ComponentsPage struct {
	table table.Model
}

// NewComponentsPage builds the page from an analysis result.
func NewComponentsPage(result model.AnalysisResult) *ComponentsPage {
	columns := []table.Column{
		{Title: "Application Component", Width: 36},
		{Title: "Process Name", Width: 36},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(componentRows(result)),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return &ComponentsPage{table: t}
}

// componentRows produces one row per component/process pair, sorted by
// component then process.
func componentRows(result model.AnalysisResult) []table.Row {
	components := make([]string, 0, len(result.ComponentServices))
	for component := range result.ComponentServices {
		components = append(components, component)
	}
	sort.Strings(components)

	var rows []table.Row
	for _, component := range components {
		processes := append([]string(nil), result.ComponentServices[component]...)
		sort.Strings(processes)
		for _, process := range processes {
			rows = append(rows, table.Row{component, process})
		}
	}
	return rows
}

func (p *ComponentsPage) ID() string    { return "components" }
func (p *ComponentsPage) Title() string { return "Components" }

func (p *ComponentsPage) Init() tea.Cmd { return nil }

func (p *ComponentsPage) Update(msg tea.Msg) tea.Cmd {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		p.table.SetWidth(wsm.Width - 4)
		if h := wsm.Height - 6; h > 3 {
			p.table.SetHeight(h)
		}
		return nil
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p *ComponentsPage) View(width, height int) string {
	return tableBorderStyle.Render(p.table.View())
}
