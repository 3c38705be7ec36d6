package tui

import (
	"sort"

	"github.com/aarelaponin/archi-reports/internal/model"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// ProcessesPage lists every business process with its serving status.
type ProcessesPage struct {
	table table.Model
}

// NewProcessesPage builds the page from an analysis result.
func NewProcessesPage(result model.AnalysisResult) *ProcessesPage {
	columns := []table.Column{
		{Title: "Process Name", Width: 36},
		{Title: "Status", Width: 10},
		{Title: "Serving Component", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(processRows(result)),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return &ProcessesPage{table: t}
}

// processRows flattens served and unserved processes into table rows sorted
// by process name.
func processRows(result model.AnalysisResult) []table.Row {
	rows := make([]table.Row, 0, result.ProcessCount())
	for _, p := range result.ServedProcesses {
		rows = append(rows, table.Row{p.Name, "served", p.ServingComponent})
	}
	for _, p := range result.UnservedProcesses {
		rows = append(rows, table.Row{p.Name, "unserved", ""})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	return rows
}

func (p *ProcessesPage) ID() string    { return "processes" }
func (p *ProcessesPage) Title() string { return "Processes" }

func (p *ProcessesPage) Init() tea.Cmd { return nil }

func (p *ProcessesPage) Update(msg tea.Msg) tea.Cmd {
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

func (p *ProcessesPage) View(width, height int) string {
	return tableBorderStyle.Render(p.table.View())
}
