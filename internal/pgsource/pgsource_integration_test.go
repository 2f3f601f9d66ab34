package pgsource

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/schemagraph/schemagraph/metadata"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestSourceAgainstLivePostgres exercises every metadata.Source method
// against a real server: a schema with two tables joined by a foreign
// key, scanned back exactly as graph.Store.LoadFromSource would.
func TestSourceAgainstLivePostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:17",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer db.Close()

	const ddl = `
		CREATE TABLE customers (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL
		);
		CREATE TABLE orders (
			id SERIAL PRIMARY KEY,
			customer_id INTEGER NOT NULL REFERENCES customers(id),
			total_amount NUMERIC(10,2) NOT NULL
		);`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	src := New(db)

	schemas, err := src.Schemas(ctx, "testdb", "")
	if err != nil {
		t.Fatalf("Schemas failed: %v", err)
	}
	if !containsSchema(schemas, "public") {
		t.Fatalf("expected public schema, got %v", schemas)
	}

	tables, err := src.Tables(ctx, "testdb", "public", "%")
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d: %v", len(tables), tables)
	}

	columns, err := src.Columns(ctx, "testdb", "public", "%")
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if len(columns) != 5 {
		t.Fatalf("expected 5 columns across both tables, got %d", len(columns))
	}

	pks, err := src.PrimaryKeys(ctx, "testdb", "public", "%")
	if err != nil {
		t.Fatalf("PrimaryKeys failed: %v", err)
	}
	if len(pks) != 2 {
		t.Fatalf("expected 2 primary keys, got %d", len(pks))
	}

	fks, err := src.ExportedKeys(ctx, "testdb", "public", "%")
	if err != nil {
		t.Fatalf("ExportedKeys failed: %v", err)
	}
	if len(fks) != 1 {
		t.Fatalf("expected 1 foreign key, got %d", len(fks))
	}
	if fks[0].FKTableName != "orders" || fks[0].PKTableName != "customers" {
		t.Errorf("unexpected foreign key shape: %+v", fks[0])
	}

	types, err := src.TypeInfo(ctx)
	if err != nil {
		t.Fatalf("TypeInfo failed: %v", err)
	}
	if len(types) == 0 {
		t.Fatal("expected at least one base type from pg_catalog")
	}

	idx, err := src.IndexInfo(ctx, "testdb", "public", "orders")
	if err != nil {
		t.Fatalf("IndexInfo failed: %v", err)
	}
	if len(idx) == 0 {
		t.Fatal("expected at least the primary key index on orders")
	}
}

func containsSchema(rows []metadata.SchemaRow, name string) bool {
	for _, r := range rows {
		if r.TableSchem == name {
			return true
		}
	}
	return false
}
