package model

// Analyzer derives process classifications from a parsed model document.
type Analyzer interface {
	Analyze() AnalysisResult
}

// Exporter renders tabular report data in one output format. Rows are
// positional and aligned with columns; empty cells are format-specific
// (the console exporter skips them, the CSV exporter writes them blank).
type Exporter interface {
	Export(header string, columns []string, rows [][]string) error
}

// Report transforms an analysis result into rows and hands them to an
// Exporter. Sorting and column selection live here, not in the core.
type Report interface {
	Generate(result AnalysisResult) error
}
