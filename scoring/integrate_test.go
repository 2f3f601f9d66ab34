package scoring

import (
	"testing"

	"github.com/schemagraph/schemagraph/graph"
)

func TestAddFactAndDimScoresDisqualifiesKeyColumns(t *testing.T) {
	// S1: orders(id PK, customer_id FK->customers.id, ...); every column
	// that participates in the key relationship, on both ends, is
	// disqualified with a fact total well below -99000.
	g := buildOrdersGraph(t)
	result, err := AddFactAndDimScores(g)
	if err != nil {
		t.Fatalf("AddFactAndDimScores failed: %v", err)
	}

	for _, id := range []graph.NodeID{
		graph.ColumnID("cat", "public", "orders", "id"),
		graph.ColumnID("cat", "public", "customers", "id"),
		graph.ColumnID("cat", "public", "orders", "customer_id"),
	} {
		if !result.Fact.Disqualified(id) {
			t.Errorf("expected %q to be disqualified, fact total=%d", id, result.Fact.Total(id))
		}
		if total := result.Fact.Total(id); total > -99000 {
			t.Errorf("expected %q fact total <= -99000, got %d", id, total)
		}
	}
}

func TestAddFactAndDimScoresRanksMeasureColumnHighest(t *testing.T) {
	g := buildOrdersGraph(t)
	result, err := AddFactAndDimScores(g)
	if err != nil {
		t.Fatalf("AddFactAndDimScores failed: %v", err)
	}

	amount := graph.ColumnID("cat", "public", "orders", "total_amount")
	notes := graph.ColumnID("cat", "public", "orders", "notes")

	if result.Fact.Disqualified(amount) {
		t.Fatal("expected total_amount to survive disqualification")
	}
	if result.Fact.Total(amount) <= result.Fact.Total(notes) {
		t.Errorf("expected total_amount (fact=%d) to outscore notes (fact=%d)",
			result.Fact.Total(amount), result.Fact.Total(notes))
	}
}

func TestAddFactAndDimScoresWritesBackBothAttributes(t *testing.T) {
	g := buildOrdersGraph(t)
	result, err := AddFactAndDimScores(g)
	if err != nil {
		t.Fatalf("AddFactAndDimScores failed: %v", err)
	}

	amount := graph.ColumnID("cat", "public", "orders", "total_amount")
	attrs := g.NodeAttrs(amount)

	gotFact, ok := attrs[FactScoreAttr].(int)
	if !ok {
		t.Fatalf("expected %q attribute to be written as an int, got %v", FactScoreAttr, attrs[FactScoreAttr])
	}
	if gotFact != int(result.Fact.Total(amount)) {
		t.Errorf("expected written fact_score to match the objective's total, got %d want %d",
			gotFact, result.Fact.Total(amount))
	}

	// total_amount is NUMERIC, which is fact-viable but not
	// dimension-viable, so it was never scored on the dim axis and must
	// receive the -1 "not applicable" sentinel rather than 0.
	gotDim, ok := attrs[DimScoreAttr].(int)
	if !ok {
		t.Fatalf("expected %q attribute to be written as an int, got %v", DimScoreAttr, attrs[DimScoreAttr])
	}
	if gotDim != -1 {
		t.Errorf("expected an unscored dimension total to be written as -1, got %d", gotDim)
	}
}

func TestAddFactAndDimScoresTypeBasedDimension(t *testing.T) {
	// S2: products.name VARCHAR(200) receives a dimension score of +200
	// and a fact score of -100000 (VARCHAR is fact-disqualifying).
	g, id := buildSingleColumnGraph(t, "products", "name", "VARCHAR", false)
	result, err := AddFactAndDimScores(g)
	if err != nil {
		t.Fatalf("AddFactAndDimScores failed: %v", err)
	}

	if got := result.Dim.Total(id); got != 200 {
		t.Errorf("expected dimension score +200, got %d", got)
	}
	if !result.Fact.Disqualified(id) {
		t.Error("expected VARCHAR to be fact-disqualified")
	}
	if got := result.Fact.Total(id); got != -100000 {
		t.Errorf("expected fact score -100000, got %d", got)
	}
}

func TestAddFactAndDimScoresKeywordSingleWordExactMatch(t *testing.T) {
	// S3: sales.price DECIMAL(10,2) receives +200 (fact-viable DECIMAL)
	// and +200 (exact keyword match on "price") for a fact total of
	// +400; its dimension score is -1 (DECIMAL is not dimension-viable).
	g, id := buildSingleColumnGraph(t, "sales", "price", "DECIMAL", false)
	result, err := AddFactAndDimScores(g)
	if err != nil {
		t.Fatalf("AddFactAndDimScores failed: %v", err)
	}

	if got := result.Fact.Total(id); got != 400 {
		t.Errorf("expected fact total +400, got %d", got)
	}
	if result.Dim.Scored(id) {
		t.Errorf("expected DECIMAL to never be scored on the dimension axis, got %v", result.Dim.GetNodeScores(nil))
	}
}

func TestAddFactAndDimScoresKeywordMultiWordDisqualifyingSuffix(t *testing.T) {
	// S4: orders.order_id INT is disqualified because the name ends in
	// "id", despite INT being a fact-viable type.
	g, id := buildSingleColumnGraph(t, "orders", "order_id", "INT", false)
	result, err := AddFactAndDimScores(g)
	if err != nil {
		t.Fatalf("AddFactAndDimScores failed: %v", err)
	}

	if !result.Fact.Disqualified(id) {
		t.Errorf("expected order_id to be fact-disqualified, got scores %v", result.Fact.GetNodeScores(nil))
	}
}
