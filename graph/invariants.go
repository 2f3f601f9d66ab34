package graph

import (
	"fmt"
	"sort"
)

// ValidatePKKeySeq checks spec invariant 3: the key_seq values carried on
// a primary key's outgoing pk-column edges form the contiguous sequence
// 1..N, where N is the number of member columns. It does not mutate the
// graph; callers (tests, diagnostics) invoke it on demand.
func (g *Graph) ValidatePKKeySeq(pkID NodeID) error {
	var seqs []int
	for _, e := range g.OutEdges(pkID) {
		if e.EdgeKindOf() != EdgePKColumn {
			continue
		}
		seq, _ := e.Attrs()["key_seq"].(int)
		seqs = append(seqs, seq)
	}
	if len(seqs) == 0 {
		return fmt.Errorf("pk %q has no member columns", pkID)
	}
	sort.Ints(seqs)
	for i, seq := range seqs {
		if seq != i+1 {
			return fmt.Errorf("pk %q key_seq values are not contiguous 1..N: got %v", pkID, seqs)
		}
	}
	return nil
}

// ValidateBidirectional checks spec invariant 2: every table-column edge
// has an inverse column-table edge, and every reference edge has an
// inverse reference-by edge.
func (g *Graph) ValidateBidirectional() error {
	for _, id := range g.Nodes() {
		for _, e := range g.OutEdges(id) {
			var inverse EdgeKind
			switch e.EdgeKindOf() {
			case EdgeTableColumn:
				inverse = EdgeColumnTable
			case EdgeColumnTable:
				inverse = EdgeTableColumn
			case EdgeReference:
				inverse = EdgeReferenceBy
			case EdgeReferenceBy:
				inverse = EdgeReference
			default:
				continue
			}
			if !hasEdge(g, e.To(), e.From(), inverse) {
				return fmt.Errorf("edge %s --%s--> %s has no inverse %s edge",
					e.From(), e.EdgeKindOf(), e.To(), inverse)
			}
		}
	}
	return nil
}

func hasEdge(g *Graph, from, to NodeID, kind EdgeKind) bool {
	for _, e := range g.OutEdges(from) {
		if e.To() == to && e.EdgeKindOf() == kind {
			return true
		}
	}
	return false
}
