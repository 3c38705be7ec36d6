// Package report turns analysis results into tabular rows for an exporter.
// Sorting and column selection happen here; the analysis core guarantees
// only document order.
package report

import (
	"fmt"
	"sort"

	"github.com/aarelaponin/archi-reports/internal/model"
)

// ProcessStatusReport lists business processes by served or unserved status,
// sorted by process name.
type ProcessStatusReport struct {
	exporter   model.Exporter
	showServed bool
}

// NewProcessStatusReport creates the report. When showServed is true the
// served collection is rendered with its serving components; otherwise the
// unserved collection is rendered with the name column only.
func NewProcessStatusReport(exporter model.Exporter, showServed bool) *ProcessStatusReport {
	return &ProcessStatusReport{exporter: exporter, showServed: showServed}
}

// Generate renders the selected process collection through the exporter.
func (r *ProcessStatusReport) Generate(result model.AnalysisResult) error {
	processes := result.UnservedProcesses
	label := "Unserved"
	columns := []string{"Process Name"}
	if r.showServed {
		processes = result.ServedProcesses
		label = "Served"
		columns = []string{"Process Name", "Serving Component"}
	}

	sorted := append([]model.ProcessInfo(nil), processes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	rows := make([][]string, 0, len(sorted))
	for _, p := range sorted {
		if r.showServed {
			rows = append(rows, []string{p.Name, p.ServingComponent})
		} else {
			rows = append(rows, []string{p.Name})
		}
	}

	header := fmt.Sprintf("Process Status Report: %s Business Processes", label)
	return r.exporter.Export(header, columns, rows)
}
