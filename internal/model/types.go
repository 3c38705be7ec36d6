package model

// Element type and relationship type tags from the ArchiMate Open Exchange
// vocabulary. Only these three participate in classification; other tags are
// retained in the index but never matched.
const (
	TypeBusinessProcess      = "BusinessProcess"
	TypeApplicationComponent = "ApplicationComponent"
	TypeServing              = "Serving"
)

// Element is a typed, named node in the architecture model.
type Element struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// Relationship is a typed directed edge between two elements.
type Relationship struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

// ProcessInfo describes one business process and, when served, the name of
// the application component serving it. ServingComponent is empty for
// unserved processes.
type ProcessInfo struct {
	Name             string `json:"name"`
	ServingComponent string `json:"serving_component,omitempty"`
}

// AnalysisResult is the read-only snapshot handed to reporting layers.
// ComponentServices maps an application component name to the processes for
// which it was recorded as the first serving component, in document order.
type AnalysisResult struct {
	ServedProcesses   []ProcessInfo       `json:"served_processes"`
	UnservedProcesses []ProcessInfo       `json:"unserved_processes"`
	ComponentServices map[string][]string `json:"app_component_services"`
}

// ProcessCount returns the total number of business processes in the result.
func (r AnalysisResult) ProcessCount() int {
	return len(r.ServedProcesses) + len(r.UnservedProcesses)
}
