package graph

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
)

type graphmlKey struct {
	XMLName  xml.Name `xml:"key"`
	ID       string   `xml:"id,attr"`
	For      string   `xml:"for,attr"`
	AttrName string   `xml:"attr.name,attr"`
	AttrType string   `xml:"attr.type,attr"`
}

type graphmlData struct {
	XMLName xml.Name `xml:"data"`
	Key     string   `xml:"key,attr"`
	Value   string   `xml:",chardata"`
}

type graphmlNode struct {
	XMLName xml.Name      `xml:"node"`
	ID      string        `xml:"id,attr"`
	Data    []graphmlData `xml:"data"`
}

type graphmlEdge struct {
	XMLName xml.Name      `xml:"edge"`
	Source  string        `xml:"source,attr"`
	Target  string        `xml:"target,attr"`
	Data    []graphmlData `xml:"data"`
}

type graphmlGraph struct {
	XMLName     xml.Name      `xml:"graph"`
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	Xmlns   string       `xml:"xmlns,attr"`
	Keys    []graphmlKey `xml:"key"`
	Graph   graphmlGraph `xml:"graph"`
}

const (
	keyNodeKind = "d_node_kind"
	keyEdgeKind = "d_edge_kind"
)

// ExportGraphML renders g as a GraphML document: every node carries its
// NodeKind plus its null-filtered attribute bag, every edge its EdgeKind
// plus attribute bag. Attribute values are projected to GraphML's string
// type regardless of their Go type — the bag is already heterogeneous by
// node kind, and GraphML's declared key types exist for downstream tool
// interop rather than anything this package itself reads back.
func ExportGraphML(w io.Writer, g *Graph) error {
	doc := graphmlDoc{
		Xmlns: "http://graphml.graphdrawing.org/xmlns",
		Keys: []graphmlKey{
			{ID: keyNodeKind, For: "node", AttrName: "kind", AttrType: "string"},
			{ID: keyEdgeKind, For: "edge", AttrName: "kind", AttrType: "string"},
		},
		Graph: graphmlGraph{EdgeDefault: "directed"},
	}

	attrKeys := make(map[string]string) // key id -> "node" or "edge"

	for _, id := range g.Nodes() {
		n := graphmlNode{ID: string(id)}
		n.Data = append(n.Data, graphmlData{Key: keyNodeKind, Value: string(g.NodeKindOf(id))})
		attrs := g.NodeAttrs(id)
		for _, k := range sortedKeys(attrs) {
			key := "n_" + k
			attrKeys[key] = "node"
			n.Data = append(n.Data, graphmlData{Key: key, Value: fmt.Sprint(attrs[k])})
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, n)

		for _, e := range g.OutEdges(id) {
			ed := graphmlEdge{Source: string(e.From()), Target: string(e.To())}
			ed.Data = append(ed.Data, graphmlData{Key: keyEdgeKind, Value: string(e.EdgeKindOf())})
			eAttrs := e.Attrs()
			for _, k := range sortedKeys(eAttrs) {
				key := "e_" + k
				attrKeys[key] = "edge"
				ed.Data = append(ed.Data, graphmlData{Key: key, Value: fmt.Sprint(eAttrs[k])})
			}
			doc.Graph.Edges = append(doc.Graph.Edges, ed)
		}
	}

	for _, key := range sortedStringMapKeys(attrKeys) {
		name := key[2:]
		doc.Keys = append(doc.Keys, graphmlKey{
			ID: key, For: attrKeys[key], AttrName: name, AttrType: "string",
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(doc)
}

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedStringMapKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
