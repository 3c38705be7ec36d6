// Package export renders report tables to the console or to CSV files.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ConsoleExporter writes numbered report rows as plain text.
type ConsoleExporter struct {
	out io.Writer
}

// NewConsoleExporter creates a console exporter writing to stdout.
func NewConsoleExporter() *ConsoleExporter {
	return &ConsoleExporter{out: os.Stdout}
}

// NewConsoleExporterTo creates a console exporter writing to w.
func NewConsoleExporterTo(w io.Writer) *ConsoleExporter {
	return &ConsoleExporter{out: w}
}

// Export prints the header, an item count, and one numbered line per row.
// Empty cells are skipped rather than printed as blanks.
func (e *ConsoleExporter) Export(header string, columns []string, rows [][]string) error {
	if _, err := fmt.Fprintf(e.out, "\n%s\n", header); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(e.out, "Found %d items:\n", len(rows)); err != nil {
		return err
	}

	for i, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if cell != "" {
				cells = append(cells, cell)
			}
		}
		if _, err := fmt.Fprintf(e.out, "%d. %s\n", i+1, strings.Join(cells, " - ")); err != nil {
			return err
		}
	}
	return nil
}
