// Package dataframe defines the narrow row-oriented interface graph.Frame
// consumers project a graph's node attribute bags through,
// without committing this module to any specific columnar or tabular
// library. See DESIGN.md for why apache/arrow and xitongsys/parquet-go,
// though present elsewhere in the retrieval corpus, are not wired here.
package dataframe

// Frame is a minimal, ordered row source: Columns names the fields every
// row carries, in order, and Next yields one row at a time.
type Frame interface {
	Columns() []string
	Next() (map[string]any, bool)
}

// RowIter adapts a plain slice of rows (as produced by graph.Frame's
// attribute-bag projection) into a Frame.
type RowIter struct {
	columns []string
	rows    []map[string]any
	pos     int
}

// NewRowIter builds a RowIter over rows, reporting columns as its column
// order.
func NewRowIter(columns []string, rows []map[string]any) *RowIter {
	return &RowIter{columns: columns, rows: rows}
}

func (it *RowIter) Columns() []string { return it.columns }

func (it *RowIter) Next() (map[string]any, bool) {
	if it.pos >= len(it.rows) {
		return nil, false
	}
	row := it.rows[it.pos]
	it.pos++
	return row, true
}
