package archimate

import "github.com/aarelaponin/archi-reports/internal/model"

// Analyzer classifies the business processes of a parsed model into served
// and unserved sets. It is a pure reader of the index: Analyze may be called
// repeatedly and concurrently.
type Analyzer struct {
	index *Index
}

var _ model.Analyzer = (*Analyzer)(nil)

// NewAnalyzer parses the given document text and returns an analyzer over
// it. Parsing happens exactly once, here.
func NewAnalyzer(text string) (*Analyzer, error) {
	idx, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return &Analyzer{index: idx}, nil
}

// Index exposes the underlying model index.
func (a *Analyzer) Index() *Index { return a.index }

// Analyze walks every business process in document order and records, for
// each, the first incoming Serving relationship whose source resolves to an
// application component. A process with no such relationship is unserved.
// Relationships whose source identifier does not resolve are skipped, not
// errors.
func (a *Analyzer) Analyze() model.AnalysisResult {
	result := model.AnalysisResult{
		ComponentServices: make(map[string][]string),
	}

	for _, id := range a.index.ElementIDs() {
		el, _ := a.index.Element(id)
		if el.Type != model.TypeBusinessProcess {
			continue
		}

		served := false
		for _, rel := range a.index.Incoming(id) {
			if rel.Type != model.TypeServing {
				continue
			}
			source, ok := a.index.Element(rel.Source)
			if !ok || source.Type != model.TypeApplicationComponent {
				continue
			}
			result.ServedProcesses = append(result.ServedProcesses, model.ProcessInfo{
				Name:             el.Name,
				ServingComponent: source.Name,
			})
			result.ComponentServices[source.Name] = append(result.ComponentServices[source.Name], el.Name)
			served = true
			break
		}

		if !served {
			result.UnservedProcesses = append(result.UnservedProcesses, model.ProcessInfo{Name: el.Name})
		}
	}

	return result
}
