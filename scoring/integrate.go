package scoring

import "github.com/schemagraph/schemagraph/graph"

// FactScoreAttr and DimScoreAttr are the node attribute keys
// AddFactAndDimScores writes the two totals back under. A node never
// scored by either objective receives unscoredValue, to distinguish
// "not applicable" from a genuine zero total.
const (
	FactScoreAttr = "fact_score"
	DimScoreAttr  = "dim_score"
)

const unscoredValue = -1

// Result is the pair of merged objectives AddFactAndDimScores produces:
// one ranking fact-measure candidacy, one ranking dimension candidacy.
type Result struct {
	Fact *Objective
	Dim  *Objective
}

// AddFactAndDimScores walks every schema in g, running the key-
// disqualification, type, and keyword scorers over each column in a
// single pass, merges their three Fact objectives and their three Dim
// objectives, and writes both totals back onto every node in the graph
// under FactScoreAttr/DimScoreAttr.
func AddFactAndDimScores(g *graph.Graph) (*Result, error) {
	dq := NewKeyDisqualificationVisitor()
	ts := NewTypeScoreVisitor()
	kw := NewKeywordScorer()
	composite := NewCompositeVisitor(dq, ts, kw)

	driver := graph.NewDriver(g)
	for _, schemaID := range g.NodesByKind(graph.KindSchema) {
		if err := driver.Accept(schemaID, composite, nil); err != nil {
			return nil, err
		}
	}

	fact, err := mergeObjectives(dq.Fact, ts.Fact, kw.Fact)
	if err != nil {
		return nil, err
	}
	dim, err := mergeObjectives(dq.Dim, ts.Dim, kw.Dim)
	if err != nil {
		return nil, err
	}

	for _, id := range g.Nodes() {
		g.SetNodeAttr(id, FactScoreAttr, scoreOrUnscored(fact, id))
		g.SetNodeAttr(id, DimScoreAttr, scoreOrUnscored(dim, id))
	}

	return &Result{Fact: fact, Dim: dim}, nil
}

func scoreOrUnscored(o *Objective, id graph.NodeID) int {
	if !o.Scored(id) {
		return unscoredValue
	}
	return int(o.Total(id))
}

func mergeObjectives(objectives ...*Objective) (*Objective, error) {
	merged := objectives[0]
	for _, o := range objectives[1:] {
		var err error
		merged, err = merged.Merge(o)
		if err != nil {
			return nil, err
		}
	}
	return merged, nil
}
