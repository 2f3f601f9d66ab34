package scoring

import (
	"fmt"
	"strings"

	"github.com/schemagraph/schemagraph/graph"
)

// TypeDictionary configures TypeScoreVisitor: which type names count
// toward a dimension, which count toward a fact, their per-type scores,
// and which types rule a column out as a fact altogether. A type may
// appear in more than one set — VARCHAR is both dimension-viable and
// fact-disqualifying, since it is a reasonable label but can never be
// summed.
type TypeDictionary struct {
	DimTypes          map[string]NodeScore
	FactTypes         map[string]NodeScore
	FactDisqualifying map[string]bool
}

// DefaultTypeDictionary is the English/JDBC-named default: text, bit and
// temporal types are dimension-viable and fact-disqualifying; numeric
// types are fact-viable.
func DefaultTypeDictionary() TypeDictionary {
	dimNames := []string{"VARCHAR", "CHAR", "BIT", "TEXT", "DATE", "TIME", "TIMESTAMP", "DATETIME"}
	factNames := []string{"DECIMAL", "NUMERIC", "INT", "SMALLINT", "SMALLINT UNSIGNED"}

	dim := make(map[string]NodeScore, len(dimNames))
	disqualifying := make(map[string]bool, len(dimNames))
	for _, n := range dimNames {
		dim[n] = Good
		disqualifying[n] = true
	}
	fact := make(map[string]NodeScore, len(factNames))
	for _, n := range factNames {
		fact[n] = Good
	}

	return TypeDictionary{DimTypes: dim, FactTypes: fact, FactDisqualifying: disqualifying}
}

// TypeScoreVisitor rewards or disqualifies columns by their declared
// type, independent of name: a measure has to be something you can sum
// or average, so a text, bit, or temporal column is fact-disqualified
// regardless of what it's called, while still being a fine dimension
// label.
type TypeScoreVisitor struct {
	graph.NoopVisitor
	Dict TypeDictionary
	Fact *Objective
	Dim  *Objective
}

// NewTypeScoreVisitor returns a visitor using DefaultTypeDictionary.
func NewTypeScoreVisitor() *TypeScoreVisitor {
	return NewTypeScoreVisitorWithDictionary(DefaultTypeDictionary())
}

// NewTypeScoreVisitorWithDictionary returns a visitor scoring against a
// caller-supplied dictionary, so the default English type list can be
// replaced wholesale.
func NewTypeScoreVisitorWithDictionary(dict TypeDictionary) *TypeScoreVisitor {
	return &TypeScoreVisitor{Dict: dict, Fact: NewObjective("fact"), Dim: NewObjective("dim")}
}

func (v *TypeScoreVisitor) VisitColumn(ctx *graph.VisitContext, id graph.NodeID) error {
	attrs := ctx.Graph.NodeAttrs(id)
	typeName, _ := attrs["type_name"].(string)
	upper := strings.ToUpper(typeName)

	if score, ok := v.Dict.DimTypes[upper]; ok {
		v.Dim.Add(id, score, fmt.Sprintf("dimension-viable type %s", upper))
	}
	if v.Dict.FactDisqualifying[upper] {
		v.Fact.Add(id, NodeDisqualified, fmt.Sprintf("type %s cannot be summarised", upper))
	} else if score, ok := v.Dict.FactTypes[upper]; ok {
		v.Fact.Add(id, score, fmt.Sprintf("fact-viable type %s", upper))
	}
	return nil
}
