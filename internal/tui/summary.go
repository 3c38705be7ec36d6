package tui

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/aarelaponin/archi-reports/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SummaryPage shows served/unserved totals and a bar chart of served
// process counts per application component.
type SummaryPage struct {
	result model.AnalysisResult
	width  int
	height int
}

// NewSummaryPage builds the page from an analysis result.
func NewSummaryPage(result model.AnalysisResult) *SummaryPage {
	return &SummaryPage{result: result}
}

func (p *SummaryPage) ID() string    { return "summary" }
func (p *SummaryPage) Title() string { return "Summary" }

func (p *SummaryPage) Init() tea.Cmd { return nil }

func (p *SummaryPage) Update(msg tea.Msg) tea.Cmd {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		p.width = wsm.Width
		p.height = wsm.Height
	}
	return nil
}

func (p *SummaryPage) View(width, height int) string {
	if width <= 0 {
		width = 80
	}

	served := len(p.result.ServedProcesses)
	unserved := len(p.result.UnservedProcesses)
	counts := titleStyle.Render("Business Process Serving Summary") + "\n" +
		fmt.Sprintf("Processes: %d total, %d served, %d unserved\n", served+unserved, served, unserved)

	chart := p.renderComponentChart(width)
	return lipgloss.JoinVertical(lipgloss.Left, counts, chart)
}

// renderComponentChart draws one bar per component, its height the number
// of processes that component serves.
func (p *SummaryPage) renderComponentChart(width int) string {
	if len(p.result.ComponentServices) == 0 {
		return helpStyle.Render("No serving components in this model")
	}

	components := make([]string, 0, len(p.result.ComponentServices))
	for component := range p.result.ComponentServices {
		components = append(components, component)
	}
	sort.Strings(components)

	chartWidth := width - 4
	if chartWidth < 20 {
		chartWidth = 20
	}
	bc := barchart.New(chartWidth, 10,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(3),
	)

	for _, component := range components {
		bc.Push(barchart.BarData{
			Label: component,
			Values: []barchart.BarValue{
				{Name: component, Value: float64(len(p.result.ComponentServices[component])), Style: servedStyle},
			},
		})
	}
	if unserved := len(p.result.UnservedProcesses); unserved > 0 {
		bc.Push(barchart.BarData{
			Label: "(none)",
			Values: []barchart.BarValue{
				{Name: "Unserved", Value: float64(unserved), Style: unservedStyle},
			},
		})
	}
	bc.Draw()

	legend := helpStyle.Render("served processes per application component; (none) = unserved")
	return lipgloss.JoinVertical(lipgloss.Left, bc.View(), legend)
}
