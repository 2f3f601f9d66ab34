package scoring

import "github.com/schemagraph/schemagraph/graph"

// KeyDisqualificationVisitor disqualifies every column that participates
// in a primary or foreign key. Identifying columns are never fact-table
// measures, so this scorer runs first and the other two only ever add to
// whatever survives it. It never contributes to dimension scoring, but
// still carries a Dim objective (always empty) so every scorer has the
// same pair-of-objectives shape and Merge can treat all three uniformly.
type KeyDisqualificationVisitor struct {
	graph.NoopVisitor
	Fact *Objective
	Dim  *Objective
}

// NewKeyDisqualificationVisitor returns a visitor with empty objectives.
func NewKeyDisqualificationVisitor() *KeyDisqualificationVisitor {
	return &KeyDisqualificationVisitor{Fact: NewObjective("fact"), Dim: NewObjective("dim")}
}

func (v *KeyDisqualificationVisitor) VisitPK(ctx *graph.VisitContext, id graph.NodeID) error {
	for _, e := range ctx.Graph.OutEdges(id) {
		if e.EdgeKindOf() == graph.EdgePKColumn {
			v.Fact.Add(e.To(), NodeDisqualified, "column is part of primary key")
		}
	}
	return nil
}

// VisitReference is the dedicated callback fired for reference edges
// (referencing column -> referenced column); both endpoints are
// disqualified from being a fact measure, since one is literally a
// foreign key and the other is the thing it points at.
func (v *KeyDisqualificationVisitor) VisitReference(ctx *graph.VisitContext, from, to graph.NodeID) error {
	v.Fact.Add(from, NodeDisqualified, "column is a foreign key")
	v.Fact.Add(to, NodeDisqualified, "column is referenced by a foreign key")
	return nil
}
