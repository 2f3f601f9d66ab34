package graph

import (
	"testing"

	"github.com/schemagraph/schemagraph/metadata"
)

// newSampleStore builds a two-table store: customers(id pk) and
// orders(id pk, customer_id fk -> customers.id, total_amount numeric), used
// across builder, submodel, and visitor tests.
func newSampleStore() *Store {
	s := NewStore()
	s.Load(
		"cat",
		[]metadata.SchemaRow{{TableCatalog: "cat", TableSchem: "public"}},
		[]metadata.TableRow{
			{TableCat: "cat", TableSchem: "public", TableName: "customers", TableType: "TABLE"},
			{TableCat: "cat", TableSchem: "public", TableName: "orders", TableType: "TABLE"},
		},
		[]metadata.ColumnRow{
			{TableCat: "cat", TableSchem: "public", TableName: "customers", ColumnName: "id", TypeName: "int4", OrdinalPosition: 1},
			{TableCat: "cat", TableSchem: "public", TableName: "orders", ColumnName: "id", TypeName: "int4", OrdinalPosition: 1},
			{TableCat: "cat", TableSchem: "public", TableName: "orders", ColumnName: "customer_id", TypeName: "int4", OrdinalPosition: 2},
			{TableCat: "cat", TableSchem: "public", TableName: "orders", ColumnName: "total_amount", TypeName: "numeric", OrdinalPosition: 3},
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
		[]metadata.TypeInfoRow{
			{TypeName: "int4"},
			{TypeName: "numeric"},
		},
	)
	return s
}

func TestNodeIDComposite(t *testing.T) {
	cases := []struct {
		name string
		got  NodeID
		want NodeID
	}{
		{"schema", SchemaID("cat", "public"), "schema://cat.public"},
		{"schema empty", SchemaID("cat", ""), "schema://cat.@"},
		{"table", TableID("cat", "public", "orders"), "table://cat.public.orders"},
		{"column", ColumnID("cat", "public", "orders", "id"), "column://cat.public.orders.id"},
		{"pk unnamed", PKID("cat", "public", "orders", ""), "pk://cat.public.orders.@"},
		{"fk named", FKID("cat", "public", "orders", "fk1"), "fk://cat.public.orders.fk1"},
		{"type", TypeID("int4"), "type://int4"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, c.got, c.want)
		}
	}
}

func TestNodeIDsAreUniquePerRow(t *testing.T) {
	// Identifier bijection: distinct rows must never collide on id.
	ids := map[NodeID]bool{
		TableID("cat", "public", "orders"):           true,
		TableID("cat", "public", "customers"):        true,
		ColumnID("cat", "public", "orders", "id"):     true,
		ColumnID("cat", "public", "orders", "amount"): true,
	}
	if len(ids) != 4 {
		t.Fatalf("expected 4 distinct ids, got %d", len(ids))
	}
}

func TestBuildProducesSchemaTableColumnEdges(t *testing.T) {
	s := newSampleStore()
	g, placeholders, err := Build(s, true)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(placeholders) != 0 {
		t.Fatalf("expected no placeholder types, got %v", placeholders)
	}

	ordersID := TableID("cat", "public", "orders")
	if !g.HasNode(ordersID) {
		t.Fatalf("expected table node %q", ordersID)
	}
	if g.NodeKindOf(ordersID) != KindTable {
		t.Fatalf("expected kind table, got %q", g.NodeKindOf(ordersID))
	}

	schemaID := SchemaID("cat", "public")
	found := false
	for _, e := range g.OutEdges(schemaID) {
		if e.EdgeKindOf() == EdgeSchemaTable && e.To() == ordersID {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected schema-table edge from %q to %q", schemaID, ordersID)
	}
}

func TestBuildSynthesizesPlaceholderType(t *testing.T) {
	s := NewStore()
	s.Load(
		"cat",
		nil,
		[]metadata.TableRow{{TableCat: "cat", TableSchem: "", TableName: "widgets"}},
		[]metadata.ColumnRow{{TableCat: "cat", TableSchem: "", TableName: "widgets", ColumnName: "id", TypeName: "mystery_type"}},
		nil, nil, nil,
	)

	g, placeholders, err := Build(s, true)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(placeholders) != 1 || placeholders[0].TypeName != "mystery_type" {
		t.Fatalf("expected one placeholder for mystery_type, got %v", placeholders)
	}
	if !g.HasNode(TypeID("mystery_type")) {
		t.Fatalf("expected synthesized type node")
	}
}

func TestBuildRejectsOrphanedColumn(t *testing.T) {
	s := NewStore()
	s.Load(
		"cat",
		[]metadata.SchemaRow{{TableCatalog: "cat", TableSchem: "public"}},
		nil,
		[]metadata.ColumnRow{{TableCat: "cat", TableSchem: "public", TableName: "ghost", ColumnName: "id"}},
		nil, nil, nil,
	)

	_, _, err := Build(s, false)
	if err == nil {
		t.Fatal("expected a structural error for an orphaned column")
	}
	var structErr *StructuralError
	if !asStructuralError(err, &structErr) {
		t.Fatalf("expected *StructuralError, got %T: %v", err, err)
	}
}

func asStructuralError(err error, target **StructuralError) bool {
	se, ok := err.(*StructuralError)
	if ok {
		*target = se
	}
	return ok
}
