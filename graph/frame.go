package graph

import (
	"sort"

	"github.com/schemagraph/schemagraph/internal/dataframe"
)

// Frame projects every node of kind into a dataframe.Frame: one row per
// node, "id" and "kind" first, then every attribute key seen on any
// matching node, in sorted order so the column list is stable across
// calls regardless of map iteration order.
func (g *Graph) Frame(kind NodeKind) dataframe.Frame {
	ids := g.NodesByKind(kind)

	colSet := make(map[string]bool)
	for _, id := range ids {
		for k := range g.NodeAttrs(id) {
			colSet[k] = true
		}
	}
	attrCols := make([]string, 0, len(colSet))
	for k := range colSet {
		attrCols = append(attrCols, k)
	}
	sort.Strings(attrCols)

	cols := make([]string, 0, len(attrCols)+2)
	cols = append(cols, "id", "kind")
	cols = append(cols, attrCols...)

	rows := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		row := map[string]any{"id": string(id), "kind": string(kind)}
		for k, v := range g.NodeAttrs(id) {
			row[k] = v
		}
		rows = append(rows, row)
	}
	return dataframe.NewRowIter(cols, rows)
}
