package graph

// cyclicEdgeKinds lists the edge kinds Tarjan's algorithm walks when
// looking for strongly connected clusters. table-column/column-table are
// each other's inverse, so a table and its columns are always mutually
// reachable; the pk and fk edges pull key nodes into the component of
// their tables; reference and reference-by are also each other's
// inverse, and this is what lets a
// single, logically one-directional foreign key bind its two tables into
// one component: the fk column reaches the referenced column via
// reference, and the referenced column reaches back via reference-by,
// closing the cycle even though only one table actually declared the
// constraint. schema-table and column-type are deliberately excluded —
// they point to context nodes, not peers, and are reattached separately
// once the component is known.
var cyclicEdgeKinds = map[EdgeKind]bool{
	EdgeTableColumn: true,
	EdgeColumnTable: true,
	EdgeTablePK:     true,
	EdgePKColumn:    true,
	EdgeTableFK:     true,
	EdgeFKTable:     true,
	EdgeColumnFK:    true,
	EdgeFKColumn:    true,
	EdgeReference:   true,
	EdgeReferenceBy: true,
}

// Submodel is one strongly connected cluster of tables, columns, and keys
// extracted from a larger graph — a fact/dimension-style neighborhood
// bound together by primary/foreign key cycles, with its schema and type
// context nodes reattached so it remains independently walkable.
type Submodel struct {
	Graph  *Graph
	Tables []NodeID
}

// ExtractSubmodels partitions g into its strongly connected components
// over the cyclic edge kinds, discards every component holding fewer than
// two tables (a table bound only to its own columns and keys by the
// table-column/column-table pair is not a cluster worth isolating), and
// returns one Submodel per surviving component, each with its schema and
// type context nodes reattached.
func ExtractSubmodels(g *Graph) []Submodel {
	components := tarjanSCC(g)

	var out []Submodel
	for _, comp := range components {
		tables := 0
		for _, id := range comp {
			if g.NodeKindOf(id) == KindTable {
				tables++
			}
		}
		if tables < 2 {
			continue
		}
		sub := inducedSubgraph(g, comp)
		out = append(out, Submodel{
			Graph:  sub,
			Tables: sub.NodesByKind(KindTable),
		})
	}
	return out
}

type tarjanState struct {
	g       *Graph
	index   map[NodeID]int
	lowlink map[NodeID]int
	onStack map[NodeID]bool
	stack   []NodeID
	next    int
	comps   [][]NodeID
}

// tarjanSCC computes the strongly connected components of g restricted to
// cyclicEdgeKinds, using the standard recursive formulation of Tarjan's
// algorithm.
func tarjanSCC(g *Graph) [][]NodeID {
	st := &tarjanState{
		g:       g,
		index:   make(map[NodeID]int),
		lowlink: make(map[NodeID]int),
		onStack: make(map[NodeID]bool),
	}
	for _, id := range g.Nodes() {
		if _, seen := st.index[id]; !seen {
			st.strongConnect(id)
		}
	}
	return st.comps
}

func (st *tarjanState) strongConnect(v NodeID) {
	st.index[v] = st.next
	st.lowlink[v] = st.next
	st.next++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	for _, e := range st.g.OutEdges(v) {
		if !cyclicEdgeKinds[e.EdgeKindOf()] {
			continue
		}
		w := e.To()
		if _, seen := st.index[w]; !seen {
			st.strongConnect(w)
			if st.lowlink[w] < st.lowlink[v] {
				st.lowlink[v] = st.lowlink[w]
			}
		} else if st.onStack[w] {
			if st.index[w] < st.lowlink[v] {
				st.lowlink[v] = st.index[w]
			}
		}
	}

	if st.lowlink[v] != st.index[v] {
		return
	}

	var comp []NodeID
	for {
		n := len(st.stack) - 1
		w := st.stack[n]
		st.stack = st.stack[:n]
		st.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	st.comps = append(st.comps, comp)
}

// inducedSubgraph builds a new *Graph containing exactly the given
// component's nodes, every edge of g with both endpoints inside it, and
// the schema/type context nodes each member table/column points to.
func inducedSubgraph(g *Graph, comp []NodeID) *Graph {
	member := make(map[NodeID]bool, len(comp))
	for _, id := range comp {
		member[id] = true
	}

	sub := newGraph(g.store)

	for _, id := range comp {
		sub.addNode(id, g.NodeKindOf(id), g.NodeAttrs(id))
	}

	for _, id := range comp {
		switch g.NodeKindOf(id) {
		case KindTable:
			for _, e := range g.InEdges(id) {
				if e.EdgeKindOf() == EdgeSchemaTable && !sub.HasNode(e.From()) {
					sub.addNode(e.From(), g.NodeKindOf(e.From()), g.NodeAttrs(e.From()))
				}
			}
		case KindColumn:
			for _, e := range g.OutEdges(id) {
				if e.EdgeKindOf() == EdgeColumnType && !sub.HasNode(e.To()) {
					sub.addNode(e.To(), g.NodeKindOf(e.To()), g.NodeAttrs(e.To()))
				}
			}
		}
	}

	for _, id := range sub.Nodes() {
		for _, e := range g.OutEdges(id) {
			if sub.HasNode(e.To()) {
				sub.addEdge(e.From(), e.To(), e.EdgeKindOf(), e.Attrs())
			}
		}
	}

	return sub
}
