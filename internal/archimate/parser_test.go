package archimate

import (
	"errors"
	"strings"
	"testing"

	"github.com/aarelaponin/archi-reports/internal/model"
)

const modelHeader = `<?xml version="1.0" encoding="UTF-8"?>
<model xmlns="http://www.opengroup.org/xsd/archimate/3.0/"
       xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
       identifier="id-model">
  <name xml:lang="en">Test Model</name>
`

// buildModel wraps element and relationship fragments in a well-formed
// Open Exchange document.
func buildModel(elements, relationships string) string {
	var b strings.Builder
	b.WriteString(modelHeader)
	b.WriteString("  <elements>\n")
	b.WriteString(elements)
	b.WriteString("  </elements>\n")
	b.WriteString("  <relationships>\n")
	b.WriteString(relationships)
	b.WriteString("  </relationships>\n")
	b.WriteString("</model>\n")
	return b.String()
}

func mustParse(t *testing.T, text string) *Index {
	t.Helper()
	idx, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return idx
}

func TestParseReferenceModel(t *testing.T) {
	idx := mustParse(t, referenceModel())

	if got := idx.ElementCount(); got != 5 {
		t.Errorf("ElementCount = %d, want 5", got)
	}
	if got := idx.RelationshipCount(); got != 2 {
		t.Errorf("RelationshipCount = %d, want 2", got)
	}

	el, ok := idx.Element("id-order-system")
	if !ok {
		t.Fatal("element id-order-system not found")
	}
	if el.Type != model.TypeApplicationComponent {
		t.Errorf("type = %q, want %q", el.Type, model.TypeApplicationComponent)
	}
	if el.Name != "Order System" {
		t.Errorf("name = %q, want %q", el.Name, "Order System")
	}

	rels := idx.Incoming("id-order-processing")
	if len(rels) != 1 {
		t.Fatalf("Incoming(id-order-processing) = %d relationships, want 1", len(rels))
	}
	if rels[0].Source != "id-order-system" || rels[0].Type != model.TypeServing {
		t.Errorf("unexpected relationship %+v", rels[0])
	}
}

func TestParseElementOrderFollowsDocument(t *testing.T) {
	idx := mustParse(t, referenceModel())

	want := []string{
		"id-order-processing",
		"id-invoice-generation",
		"id-manual-review",
		"id-order-system",
		"id-billing-system",
	}
	got := idx.ElementIDs()
	if len(got) != len(want) {
		t.Fatalf("ElementIDs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ElementIDs[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseMissingNameDefaultsToEmpty(t *testing.T) {
	doc := buildModel(
		`    <element identifier="id-1" xsi:type="BusinessProcess"/>`+"\n", "")
	idx := mustParse(t, doc)

	el, ok := idx.Element("id-1")
	if !ok {
		t.Fatal("element id-1 not found")
	}
	if el.Name != "" {
		t.Errorf("name = %q, want empty", el.Name)
	}
}

func TestParseDuplicateIdentifierLastWriteWins(t *testing.T) {
	doc := buildModel(
		`    <element identifier="id-1" xsi:type="BusinessProcess"><name>First</name></element>
    <element identifier="id-2" xsi:type="ApplicationComponent"><name>Other</name></element>
    <element identifier="id-1" xsi:type="ApplicationComponent"><name>Second</name></element>
`, "")
	idx := mustParse(t, doc)

	if got := idx.ElementCount(); got != 2 {
		t.Errorf("ElementCount = %d, want 2", got)
	}
	el, _ := idx.Element("id-1")
	if el.Name != "Second" || el.Type != model.TypeApplicationComponent {
		t.Errorf("duplicate id resolved to %+v, want the later record", el)
	}
	// The duplicate keeps its original document position.
	if ids := idx.ElementIDs(); ids[0] != "id-1" {
		t.Errorf("ElementIDs[0] = %q, want id-1", ids[0])
	}
}

func TestParseRelationshipOrderPreserved(t *testing.T) {
	doc := buildModel(
		`    <element identifier="id-p" xsi:type="BusinessProcess"><name>P</name></element>
    <element identifier="id-a" xsi:type="ApplicationComponent"><name>A</name></element>
    <element identifier="id-b" xsi:type="ApplicationComponent"><name>B</name></element>
`,
		`    <relationship identifier="id-r1" source="id-a" target="id-p" xsi:type="Serving"/>
    <relationship identifier="id-r2" source="id-b" target="id-p" xsi:type="Serving"/>
`)
	idx := mustParse(t, doc)

	rels := idx.Incoming("id-p")
	if len(rels) != 2 {
		t.Fatalf("Incoming = %d relationships, want 2", len(rels))
	}
	if rels[0].Source != "id-a" || rels[1].Source != "id-b" {
		t.Errorf("relationship order = [%s %s], want [id-a id-b]", rels[0].Source, rels[1].Source)
	}
}

func TestParseMalformedDocument(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"truncated", modelHeader + "<elements><element"},
		{"not xml", "business processes go here"},
		{"mismatched tags", modelHeader + "<elements></relationships></model>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error type = %T, want *ParseError", err)
			}
		})
	}
}

func TestParseEmptySections(t *testing.T) {
	idx := mustParse(t, buildModel("", ""))
	if got := idx.ElementCount(); got != 0 {
		t.Errorf("ElementCount = %d, want 0", got)
	}
	if rels := idx.Incoming("id-anything"); rels != nil {
		t.Errorf("Incoming on empty index = %v, want nil", rels)
	}
}

// referenceModel is the scenario from the reference document: three business
// processes, two application components, two serving relationships.
func referenceModel() string {
	return buildModel(
		`    <element identifier="id-order-processing" xsi:type="BusinessProcess"><name xml:lang="en">Order Processing</name></element>
    <element identifier="id-invoice-generation" xsi:type="BusinessProcess"><name xml:lang="en">Invoice Generation</name></element>
    <element identifier="id-manual-review" xsi:type="BusinessProcess"><name xml:lang="en">Manual Review</name></element>
    <element identifier="id-order-system" xsi:type="ApplicationComponent"><name xml:lang="en">Order System</name></element>
    <element identifier="id-billing-system" xsi:type="ApplicationComponent"><name xml:lang="en">Billing System</name></element>
`,
		`    <relationship identifier="id-rel-1" source="id-order-system" target="id-order-processing" xsi:type="Serving"/>
    <relationship identifier="id-rel-2" source="id-billing-system" target="id-invoice-generation" xsi:type="Serving"/>
`)
}
