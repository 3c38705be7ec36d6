// Package archimate parses ArchiMate Open Exchange documents into a
// queryable index and classifies business processes by their serving
// relationships.
package archimate

import (
	"encoding/xml"
	"fmt"

	"github.com/aarelaponin/archi-reports/internal/model"
)

// ParseError reports a model document that is not well-formed Open Exchange
// XML. No partial index is returned alongside one.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing archimate model: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// document mirrors the parts of the Open Exchange 3.0 format this analyzer
// reads. Unqualified names match by local name, so the archimate default
// namespace needs no explicit handling; xsi:type does.
type document struct {
	XMLName       xml.Name          `xml:"model"`
	Elements      []docElement      `xml:"elements>element"`
	Relationships []docRelationship `xml:"relationships>relationship"`
}

type docElement struct {
	ID   string `xml:"identifier,attr"`
	Type string `xml:"http://www.w3.org/2001/XMLSchema-instance type,attr"`
	Name string `xml:"name"`
}

type docRelationship struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	Type   string `xml:"http://www.w3.org/2001/XMLSchema-instance type,attr"`
}

// Parse reads an Open Exchange model document and builds the in-memory
// index. Elements missing a name get an empty name. A duplicate identifier
// overwrites the earlier element but keeps its original document position.
func Parse(text string) (*Index, error) {
	var doc document
	if err := xml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	idx := &Index{
		elements:      make(map[string]model.Element, len(doc.Elements)),
		relationships: make(map[string][]model.Relationship),
	}

	for _, el := range doc.Elements {
		if _, seen := idx.elements[el.ID]; !seen {
			idx.order = append(idx.order, el.ID)
		}
		idx.elements[el.ID] = model.Element{ID: el.ID, Type: el.Type, Name: el.Name}
	}

	for _, rel := range doc.Relationships {
		idx.relationships[rel.Target] = append(idx.relationships[rel.Target], model.Relationship{
			Source: rel.Source,
			Target: rel.Target,
			Type:   rel.Type,
		})
	}

	return idx, nil
}
