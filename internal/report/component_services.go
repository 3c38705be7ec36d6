package report

import (
	"sort"

	"github.com/aarelaponin/archi-reports/internal/model"
)

// ComponentServicesReport lists application components with the processes
// they serve, one row per component/process pair, sorted by component then
// process name.
type ComponentServicesReport struct {
	exporter model.Exporter
}

// NewComponentServicesReport creates the report.
func NewComponentServicesReport(exporter model.Exporter) *ComponentServicesReport {
	return &ComponentServicesReport{exporter: exporter}
}

// Generate renders the component→processes mapping through the exporter.
func (r *ComponentServicesReport) Generate(result model.AnalysisResult) error {
	components := make([]string, 0, len(result.ComponentServices))
	for component := range result.ComponentServices {
		components = append(components, component)
	}
	sort.Strings(components)

	var rows [][]string
	for _, component := range components {
		processes := append([]string(nil), result.ComponentServices[component]...)
		sort.Strings(processes)
		for _, process := range processes {
			rows = append(rows, []string{component, process})
		}
	}

	return r.exporter.Export(
		"Application Components and Their Served Processes",
		[]string{"Application Component", "Process Name"},
		rows,
	)
}
