package graph

// Visitor receives callbacks as a Driver walks a Graph depth-first.
// Implementations embed NoopVisitor and override only the node kinds
// they care about, rather than implementing every method themselves.
type Visitor interface {
	VisitSchema(ctx *VisitContext, id NodeID) error
	VisitTable(ctx *VisitContext, id NodeID) error
	VisitColumn(ctx *VisitContext, id NodeID) error
	VisitPK(ctx *VisitContext, id NodeID) error
	VisitFK(ctx *VisitContext, id NodeID) error
	VisitType(ctx *VisitContext, id NodeID) error
	// VisitReference fires once per reference edge encountered while
	// walking out of a column node, in addition to VisitColumn.
	VisitReference(ctx *VisitContext, from, to NodeID) error
}

// NoopVisitor is embedded by visitors that only implement a subset of
// the Visitor interface.
type NoopVisitor struct{}

func (NoopVisitor) VisitSchema(*VisitContext, NodeID) error           { return nil }
func (NoopVisitor) VisitTable(*VisitContext, NodeID) error            { return nil }
func (NoopVisitor) VisitColumn(*VisitContext, NodeID) error           { return nil }
func (NoopVisitor) VisitPK(*VisitContext, NodeID) error               { return nil }
func (NoopVisitor) VisitFK(*VisitContext, NodeID) error               { return nil }
func (NoopVisitor) VisitType(*VisitContext, NodeID) error             { return nil }
func (NoopVisitor) VisitReference(*VisitContext, NodeID, NodeID) error { return nil }

// VisitContext carries the per-walk state visible to a Visitor: the graph
// being walked and the path of node ids from the walk's root down to (and
// including) the node currently being visited.
type VisitContext struct {
	Graph *Graph
	Path  []NodeID

	stop func() bool
}

// Stopped reports whether the walk's cancellation predicate, if any, has
// fired. Visitors that want to end a walk early return a sentinel error
// from their own code instead; Stopped is for Driver.Accept itself to
// check between nodes so a long-running walk can bail out promptly.
func (c *VisitContext) Stopped() bool {
	return c.stop != nil && c.stop()
}

// NavigationMap overrides, per node kind, which edge kinds Driver.Accept
// follows out of a node of that kind. Kinds absent from the map fall
// back to defaultNavigation.
type NavigationMap map[NodeKind][]EdgeKind

var defaultNavigation = NavigationMap{
	KindSchema: {EdgeSchemaTable},
	KindTable:  {EdgeTableColumn, EdgeTablePK, EdgeTableFK},
	KindColumn: nil,
	KindPK:     nil,
	KindFK:     nil,
	KindType:   nil,
}

// Driver walks a Graph depth-first, dispatching each node to a Visitor in
// turn. Sibling destinations reached from a single node are visited in
// VisitOrder (schema, table, column, pk, fk) whenever more than one kind
// is present, so two runs over the same graph always produce the same
// callback sequence.
type Driver struct {
	Graph *Graph
	Nav   NavigationMap
}

// NewDriver builds a Driver over g using the standard navigation map.
func NewDriver(g *Graph) *Driver {
	return &Driver{Graph: g, Nav: defaultNavigation}
}

// Accept walks the graph depth-first from root, dispatching every node it
// reaches to v, and returns the first error a Visitor method or the walk
// itself produces. stop, if non-nil, is polled between nodes to allow an
// early, error-free exit.
//
// The walk uses an explicit stack rather than recursion so a graph with a
// very long dependency chain cannot exhaust the call stack. A node
// reached twice within two hops of itself on the same path (A -> B -> A)
// is a genuine structural anomaly — everywhere Accept's navigation map
// points is meant to move strictly outward from a table toward its keys
// and neighbors — and is reported as a *TraversalError rather than
// walked forever; any other repeat within a path is silently not
// re-descended into, since the graph's context edges (schema-table,
// column-type) are trees and its key edges terminate at leaf fk/pk nodes.
func (d *Driver) Accept(root NodeID, v Visitor, stop func() bool) error {
	if !d.Graph.HasNode(root) {
		return &LookupError{ID: root}
	}

	type frame struct {
		id   NodeID
		path []NodeID
	}

	visitedOnPath := func(path []NodeID, id NodeID) bool {
		for _, p := range path {
			if p == id {
				return true
			}
		}
		return false
	}

	stack := []frame{{id: root, path: []NodeID{root}}}

	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		ctx := &VisitContext{Graph: d.Graph, Path: cur.path, stop: stop}
		if ctx.Stopped() {
			return nil
		}

		if err := dispatch(ctx, v, cur.id); err != nil {
			return err
		}

		children := d.childrenOf(cur.id)
		for i := len(children) - 1; i >= 0; i-- {
			ch := children[i]

			// A -> B -> A: ch.to is the node two hops back up the path.
			if len(cur.path) >= 2 && cur.path[len(cur.path)-2] == ch.to {
				return newTraversalError("cycle of length 2 detected at %q via %v", cur.id, cur.path)
			}
			// Any other repeat is a longer cycle; Accept does not chase
			// those, it just stops descending at this branch.
			if visitedOnPath(cur.path, ch.to) {
				continue
			}

			nextPath := make([]NodeID, len(cur.path), len(cur.path)+1)
			copy(nextPath, cur.path)
			nextPath = append(nextPath, ch.to)
			stack = append(stack, frame{id: ch.to, path: nextPath})
		}

		if d.Graph.NodeKindOf(cur.id) == KindColumn {
			for _, e := range d.Graph.OutEdges(cur.id) {
				if e.EdgeKindOf() != EdgeReference {
					continue
				}
				if err := v.VisitReference(ctx, cur.id, e.To()); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

type navTarget struct {
	to   NodeID
	kind EdgeKind
}

func (d *Driver) childrenOf(id NodeID) []navTarget {
	kind := d.Graph.NodeKindOf(id)
	edgeKinds, ok := d.Nav[kind]
	if !ok {
		edgeKinds = defaultNavigation[kind]
	}
	if edgeKinds == nil {
		return nil
	}

	allowed := make(map[EdgeKind]bool, len(edgeKinds))
	for _, k := range edgeKinds {
		allowed[k] = true
	}

	// Stable ordering: group by VisitOrder's destination-kind ranking,
	// falling back to insertion order within a group.
	rank := make(map[NodeKind]int, len(VisitOrder))
	for i, k := range VisitOrder {
		rank[k] = i
	}

	var out []navTarget
	for _, e := range d.Graph.OutEdges(id) {
		if !allowed[e.EdgeKindOf()] {
			continue
		}
		out = append(out, navTarget{to: e.To(), kind: e.EdgeKindOf()})
	}

	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			a, b := d.Graph.NodeKindOf(out[j-1].to), d.Graph.NodeKindOf(out[j].to)
			ra, rb := rankOf(rank, a), rankOf(rank, b)
			if ra <= rb {
				break
			}
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func rankOf(rank map[NodeKind]int, k NodeKind) int {
	if r, ok := rank[k]; ok {
		return r
	}
	return len(rank)
}

func dispatch(ctx *VisitContext, v Visitor, id NodeID) error {
	switch ctx.Graph.NodeKindOf(id) {
	case KindSchema:
		return v.VisitSchema(ctx, id)
	case KindTable:
		return v.VisitTable(ctx, id)
	case KindColumn:
		return v.VisitColumn(ctx, id)
	case KindPK:
		return v.VisitPK(ctx, id)
	case KindFK:
		return v.VisitFK(ctx, id)
	case KindType:
		return v.VisitType(ctx, id)
	default:
		return nil
	}
}
