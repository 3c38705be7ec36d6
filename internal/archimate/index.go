package archimate

import "github.com/aarelaponin/archi-reports/internal/model"

// Index is the queryable in-memory form of one model document: elements by
// identifier plus incoming relationships by target identifier, both in
// document order. An Index is immutable after Parse, so concurrent reads
// need no locking.
type Index struct {
	elements      map[string]model.Element
	relationships map[string][]model.Relationship
	order         []string
}

// Element returns the element with the given identifier.
func (ix *Index) Element(id string) (model.Element, bool) {
	el, ok := ix.elements[id]
	return el, ok
}

// ElementIDs returns element identifiers in document order. The returned
// slice is shared; callers must not modify it.
func (ix *Index) ElementIDs() []string {
	return ix.order
}

// Incoming returns the ordered incoming relationships targeting the given
// element, or nil when there are none.
func (ix *Index) Incoming(id string) []model.Relationship {
	return ix.relationships[id]
}

// ElementCount returns the number of distinct elements in the index.
func (ix *Index) ElementCount() int {
	return len(ix.elements)
}

// RelationshipCount returns the total number of relationships in the index.
func (ix *Index) RelationshipCount() int {
	n := 0
	for _, rels := range ix.relationships {
		n += len(rels)
	}
	return n
}
