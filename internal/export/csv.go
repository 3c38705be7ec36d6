package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CSVExporter writes reports to timestamped CSV files under a directory.
// Each Export call produces one file named <report>_<timestamp>.csv with a
// header row followed by the data rows.
type CSVExporter struct {
	reportName string
	dir        string
	now        func() time.Time
	lastPath   string
}

// NewCSVExporter creates a CSV exporter writing <reportName>_*.csv files
// into dir. An empty dir defaults to "reports".
func NewCSVExporter(reportName, dir string) *CSVExporter {
	if dir == "" {
		dir = "reports"
	}
	return &CSVExporter{
		reportName: reportName,
		dir:        dir,
		now:        time.Now,
	}
}

// LastPath returns the path of the most recently written file, or empty if
// Export has not run.
func (e *CSVExporter) LastPath() string { return e.lastPath }

// Export writes the column header row and all data rows. The report header
// string is not part of the CSV output; it only names console reports.
func (e *CSVExporter) Export(_ string, columns []string, rows [][]string) error {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("%s_%s.csv", e.reportName, e.now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return fmt.Errorf("writing csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("writing csv rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}

	e.lastPath = path
	return nil
}
