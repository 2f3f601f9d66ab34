package scoring

import (
	"testing"

	"github.com/schemagraph/schemagraph/graph"
)

func runTypeScoreVisitor(t *testing.T, g *graph.Graph) *TypeScoreVisitor {
	t.Helper()
	v := NewTypeScoreVisitor()
	driver := graph.NewDriver(g)
	for _, schemaID := range g.NodesByKind(graph.KindSchema) {
		if err := driver.Accept(schemaID, v, nil); err != nil {
			t.Fatalf("Accept failed: %v", err)
		}
	}
	return v
}

func TestTypeScoreVisitorDimensionViableTypeScoresDimAndDisqualifiesFact(t *testing.T) {
	// VARCHAR is both dimension-viable and fact-disqualifying at once —
	// it's a fine label but can never be summed.
	g, id := buildSingleColumnGraph(t, "products", "name", "VARCHAR", false)
	v := runTypeScoreVisitor(t, g)

	if got := v.Dim.Total(id); got != Good {
		t.Errorf("expected dimension score %d, got %d", Good, got)
	}
	if !v.Fact.Disqualified(id) {
		t.Error("expected VARCHAR to be fact-disqualified")
	}
}

func TestTypeScoreVisitorFactViableTypeScoresFactOnly(t *testing.T) {
	g, id := buildSingleColumnGraph(t, "sales", "price", "DECIMAL", false)
	v := runTypeScoreVisitor(t, g)

	if got := v.Fact.Total(id); got != Good {
		t.Errorf("expected fact score %d, got %d", Good, got)
	}
	if v.Dim.Scored(id) {
		t.Error("expected DECIMAL to never score on the dimension axis")
	}
}

func TestTypeScoreVisitorUnknownTypeScoresNeither(t *testing.T) {
	g, id := buildSingleColumnGraph(t, "widgets", "payload", "JSONB", false)
	v := runTypeScoreVisitor(t, g)

	if v.Fact.Scored(id) || v.Dim.Scored(id) {
		t.Error("expected a type outside both dictionaries to score neither axis")
	}
}

func TestTypeScoreVisitorIsCaseInsensitive(t *testing.T) {
	g, id := buildSingleColumnGraph(t, "sales", "price", "decimal", false)
	v := runTypeScoreVisitor(t, g)
	if got := v.Fact.Total(id); got != Good {
		t.Errorf("expected lowercase 'decimal' to match the dictionary, got %d", got)
	}
}
