package graph

// node is one vertex of the database graph: a kind tag plus a filtered
// attribute projection of its underlying metadata record, used only for
// export and generic inspection. The authoritative, fully-typed record
// lives in the Store and is reached through NodeMetadata.
type node struct {
	id    NodeID
	kind  NodeKind
	attrs map[string]any
}

// edge is one directed edge of the database graph.
type edge struct {
	from, to NodeID
	kind     EdgeKind
	attrs    map[string]any
}

// Graph is the typed directed multigraph built from a Store: schema,
// table, column, pk, fk and type nodes connected by the edge kinds
// documented in kinds.go (Build adds no index nodes, although KindIndex
// is defined). Node and edge attribute bags never
// contain nil/empty values (see filterNil), which keeps the graph
// serializable to formats like GraphML without special-casing nulls.
type Graph struct {
	store *Store

	nodes    map[NodeID]*node
	out      map[NodeID][]*edge
	in       map[NodeID][]*edge
	order    []NodeID // insertion order, for deterministic iteration
}

func newGraph(store *Store) *Graph {
	return &Graph{
		store: store,
		nodes: make(map[NodeID]*node),
		out:   make(map[NodeID][]*edge),
		in:    make(map[NodeID][]*edge),
	}
}

func (g *Graph) addNode(id NodeID, kind NodeKind, attrs map[string]any) {
	if _, exists := g.nodes[id]; !exists {
		g.order = append(g.order, id)
	}
	g.nodes[id] = &node{id: id, kind: kind, attrs: filterNil(attrs)}
}

func (g *Graph) addEdge(from, to NodeID, kind EdgeKind, attrs map[string]any) {
	e := &edge{from: from, to: to, kind: kind, attrs: filterNil(attrs)}
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)
}

// HasNode reports whether id is present in the graph.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeKindOf returns the kind tag of id, or "" if absent.
func (g *Graph) NodeKindOf(id NodeID) NodeKind {
	n, ok := g.nodes[id]
	if !ok {
		return ""
	}
	return n.kind
}

// NodeAttrs returns the null-filtered attribute projection for id.
func (g *Graph) NodeAttrs(id NodeID) map[string]any {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return n.attrs
}

// Nodes returns every node id in the graph, in insertion order.
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.order))
	copy(out, g.order)
	return out
}

// NodesByKind returns every node id of the given kinds present in *this*
// graph (as opposed to Store.NodesByKind, which answers for the full
// metadata universe regardless of whether a sub-graph was extracted).
func (g *Graph) NodesByKind(kinds ...NodeKind) []NodeID {
	var out []NodeID
	for _, id := range g.store.NodesByKind(kinds...) {
		if g.HasNode(id) {
			out = append(out, id)
		}
	}
	return out
}

// Tables is a convenience accessor equivalent to NodesByKind(KindTable).
func (g *Graph) Tables() []NodeID { return g.NodesByKind(KindTable) }

// NodeMetadata returns the typed metadata record for id from the
// underlying store.
func (g *Graph) NodeMetadata(id NodeID) (any, error) {
	if !g.HasNode(id) {
		return nil, &LookupError{ID: id}
	}
	return g.store.NodeMetadata(id)
}

// Store returns the metadata store this graph was built from.
func (g *Graph) Store() *Store { return g.store }

// InDegree returns the number of incoming edges of id.
func (g *Graph) InDegree(id NodeID) int { return len(g.in[id]) }

// OutEdges returns the outgoing edges of id.
func (g *Graph) OutEdges(id NodeID) []*edge { return g.out[id] }

// InEdges returns the incoming edges of id.
func (g *Graph) InEdges(id NodeID) []*edge { return g.in[id] }

// EdgeKindOf returns the kind of e.
func (e *edge) EdgeKindOf() EdgeKind { return e.kind }

// From returns the source node id of e.
func (e *edge) From() NodeID { return e.from }

// To returns the destination node id of e.
func (e *edge) To() NodeID { return e.to }

// Attrs returns the null-filtered attribute projection of e.
func (e *edge) Attrs() map[string]any { return e.attrs }

// SetNodeAttr sets a single attribute on an existing node. Used by score
// write-back (scoring.AddFactAndDimScores) once traversal has completed;
// it is the only mutator Graph exposes after Build.
func (g *Graph) SetNodeAttr(id NodeID, key string, value any) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[key] = value
}

// filterNil drops every entry whose value is a nil interface or an empty
// string, the two values used to represent "no data", so that attribute
// bags never carry nulls into an export format. A typed nil pointer is
// not dropped. Numeric zero (0) is a legitimate value and is kept.
func filterNil(attrs map[string]any) map[string]any {
	if attrs == nil {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out[k] = v
	}
	return out
}
