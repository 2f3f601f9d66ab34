package scoring

import (
	"testing"

	"github.com/schemagraph/schemagraph/graph"
	"github.com/schemagraph/schemagraph/metadata"
)

// buildSingleColumnGraph builds a minimal one-table, one-column graph,
// optionally making that column the table's primary key, for exercising
// a single scorer against one literal column in isolation.
func buildSingleColumnGraph(t *testing.T, table, column, typeName string, isPK bool) (*graph.Graph, graph.NodeID) {
	t.Helper()

	var pks []metadata.PrimaryKeyRow
	if isPK {
		pks = []metadata.PrimaryKeyRow{
			{TableCat: "cat", TableSchem: "public", TableName: table, ColumnName: column, KeySeq: 1, PKName: table + "_pkey"},
		}
	}

	s := graph.NewStore()
	s.Load(
		"cat",
		[]metadata.SchemaRow{{TableCatalog: "cat", TableSchem: "public"}},
		[]metadata.TableRow{{TableCat: "cat", TableSchem: "public", TableName: table}},
		[]metadata.ColumnRow{{TableCat: "cat", TableSchem: "public", TableName: table, ColumnName: column, TypeName: typeName}},
		pks,
		nil,
		nil,
	)
	g, _, err := graph.Build(s, false)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g, graph.ColumnID("cat", "public", table, column)
}

// buildOrdersGraph is the S1 key-disqualification fixture: two tables
// joined by a foreign key, plus a measure column and a non-measure text
// column on the referencing table.
func buildOrdersGraph(t *testing.T) *graph.Graph {
	t.Helper()
	s := graph.NewStore()
	s.Load(
		"cat",
		[]metadata.SchemaRow{{TableCatalog: "cat", TableSchem: "public"}},
		[]metadata.TableRow{
			{TableCat: "cat", TableSchem: "public", TableName: "customers"},
			{TableCat: "cat", TableSchem: "public", TableName: "orders"},
		},
		[]metadata.ColumnRow{
			{TableCat: "cat", TableSchem: "public", TableName: "customers", ColumnName: "id", TypeName: "int4"},
			{TableCat: "cat", TableSchem: "public", TableName: "orders", ColumnName: "id", TypeName: "int4"},
			{TableCat: "cat", TableSchem: "public", TableName: "orders", ColumnName: "customer_id", TypeName: "int4"},
			{TableCat: "cat", TableSchem: "public", TableName: "orders", ColumnName: "total_amount", TypeName: "numeric"},
			{TableCat: "cat", TableSchem: "public", TableName: "orders", ColumnName: "notes", TypeName: "text"},
		},
		[]metadata.PrimaryKeyRow{
			{TableCat: "cat", TableSchem: "public", TableName: "customers", ColumnName: "id", KeySeq: 1, PKName: "customers_pkey"},
			{TableCat: "cat", TableSchem: "public", TableName: "orders", ColumnName: "id", KeySeq: 1, PKName: "orders_pkey"},
		},
		[]metadata.ForeignKeyRow{
			{
				PKTableCat: "cat", PKTableSchem: "public", PKTableName: "customers", PKColumnName: "id",
				FKTableCat: "cat", FKTableSchem: "public", FKTableName: "orders", FKColumnName: "customer_id",
				KeySeq: 1, FKName: "orders_customer_id_fkey", PKName: "customers_pkey",
			},
		},
		nil,
	)
	g, _, err := graph.Build(s, false)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}
