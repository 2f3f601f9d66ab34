package graph

import (
	"testing"

	"github.com/schemagraph/schemagraph/metadata"
)

type recording struct {
	NoopVisitor
	kinds []NodeKind
	refs  [][2]NodeID
}

func (r *recording) VisitSchema(ctx *VisitContext, id NodeID) error {
	r.kinds = append(r.kinds, KindSchema)
	return nil
}
func (r *recording) VisitTable(ctx *VisitContext, id NodeID) error {
	r.kinds = append(r.kinds, KindTable)
	return nil
}
func (r *recording) VisitColumn(ctx *VisitContext, id NodeID) error {
	r.kinds = append(r.kinds, KindColumn)
	return nil
}
func (r *recording) VisitPK(ctx *VisitContext, id NodeID) error {
	r.kinds = append(r.kinds, KindPK)
	return nil
}
func (r *recording) VisitFK(ctx *VisitContext, id NodeID) error {
	r.kinds = append(r.kinds, KindFK)
	return nil
}
func (r *recording) VisitReference(ctx *VisitContext, from, to NodeID) error {
	r.refs = append(r.refs, [2]NodeID{from, to})
	return nil
}

func TestDriverAcceptVisitsInCanonicalGroupOrder(t *testing.T) {
	g, _, err := Build(newSampleStore(), false)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	rec := &recording{}
	driver := NewDriver(g)
	if err := driver.Accept(TableID("cat", "public", "orders"), rec, nil); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	if len(rec.kinds) == 0 || rec.kinds[0] != KindTable {
		t.Fatalf("expected the walk to start with the root table, got %v", rec.kinds)
	}

	lastColumn, firstPK, firstFK := -1, -1, -1
	for i, k := range rec.kinds {
		switch k {
		case KindColumn:
			lastColumn = i
		case KindPK:
			if firstPK == -1 {
				firstPK = i
			}
		case KindFK:
			if firstFK == -1 {
				firstFK = i
			}
		}
	}
	if firstPK == -1 || lastColumn == -1 || firstFK == -1 {
		t.Fatalf("expected column, pk and fk nodes all visited, got %v", rec.kinds)
	}
	if lastColumn > firstPK {
		t.Errorf("expected all columns before the pk group, got %v", rec.kinds)
	}
	if firstPK > firstFK {
		t.Errorf("expected the pk group before the fk group, got %v", rec.kinds)
	}
}

func TestDriverAcceptFiresVisitReferenceForForeignKeyColumns(t *testing.T) {
	g, _, err := Build(newSampleStore(), false)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	rec := &recording{}
	driver := NewDriver(g)
	if err := driver.Accept(TableID("cat", "public", "orders"), rec, nil); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	want := [2]NodeID{
		ColumnID("cat", "public", "orders", "customer_id"),
		ColumnID("cat", "public", "customers", "id"),
	}
	found := false
	for _, r := range rec.refs {
		if r == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a VisitReference callback for %v, got %v", want, rec.refs)
	}
}

// TestDriverAcceptDetectsSelfReferencingForeignKey confirms that, under
// a navigation map that follows table-fk and fk-table edges, a
// self-referencing foreign key — a table whose fk node points back to
// the same table two hops up the path — is reported as a
// *TraversalError rather than silently skipped or walked forever.
func TestDriverAcceptDetectsSelfReferencingForeignKey(t *testing.T) {
	s := NewStore()
	s.Load(
		"cat",
		[]metadata.SchemaRow{{TableCatalog: "cat", TableSchem: "public"}},
		[]metadata.TableRow{{TableCat: "cat", TableSchem: "public", TableName: "employees"}},
		[]metadata.ColumnRow{
			{TableCat: "cat", TableSchem: "public", TableName: "employees", ColumnName: "id", TypeName: "int4"},
			{TableCat: "cat", TableSchem: "public", TableName: "employees", ColumnName: "manager_id", TypeName: "int4"},
		},
		[]metadata.PrimaryKeyRow{
			{TableCat: "cat", TableSchem: "public", TableName: "employees", ColumnName: "id", KeySeq: 1, PKName: "employees_pkey"},
		},
		[]metadata.ForeignKeyRow{
			{
				PKTableCat: "cat", PKTableSchem: "public", PKTableName: "employees", PKColumnName: "id",
				FKTableCat: "cat", FKTableSchem: "public", FKTableName: "employees", FKColumnName: "manager_id",
				KeySeq: 1, FKName: "employees_manager_id_fkey", PKName: "employees_pkey",
			},
		},
		nil,
	)
	g, _, err := Build(s, false)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	driver := &Driver{Graph: g, Nav: NavigationMap{
		KindTable: {EdgeTableFK},
		KindFK:    {EdgeFKTable},
	}}
	err = driver.Accept(TableID("cat", "public", "employees"), &NoopVisitor{}, nil)
	if err == nil {
		t.Fatal("expected a traversal error for a self-referencing foreign key")
	}
	if _, ok := err.(*TraversalError); !ok {
		t.Fatalf("expected *TraversalError, got %T: %v", err, err)
	}
}
