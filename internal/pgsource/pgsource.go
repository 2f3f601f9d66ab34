// Package pgsource implements metadata.Source against a live PostgreSQL
// connection: each method is one information_schema or pg_catalog query,
// issued directly over database/sql the way the teacher's schema
// inspector queries validateSchemaExists and getConstraintColumnPosition
// do (raw SQL strings, QueryContext/QueryRowContext, no ORM layer) rather
// than through a code-generated query layer the retrieval set didn't
// carry a grounded copy of.
package pgsource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/schemagraph/schemagraph/metadata"
)

// Source reads JDBC-shaped metadata result sets from a live PostgreSQL
// database. The caller owns db's lifecycle (open and close it).
type Source struct {
	db    *sql.DB
	xform metadata.RowTransformer
}

// New wraps an already-open *sql.DB (typically opened with the pgx/v5
// stdlib driver via cmd/util.Connect), using the identity row transform.
func New(db *sql.DB) *Source {
	return NewWithTransformer(db, metadata.IdentityTransformer{})
}

// NewWithTransformer wraps db the same way New does, but runs every row
// through xform before it reaches the store. A caller that needs to fold
// a PostgreSQL quirk into a uniform shape (a version-specific column
// rename, a vendor type alias) supplies its own metadata.RowTransformer
// instead of patching this package's queries.
func NewWithTransformer(db *sql.DB, xform metadata.RowTransformer) *Source {
	if xform == nil {
		xform = metadata.IdentityTransformer{}
	}
	return &Source{db: db, xform: xform}
}

// systemSchemaFilter lists the system schemas the same way the teacher's
// validateSchemaExists excludes them. No query references it: each query
// inlines its own copy of the exclusion.
const systemSchemaFilter = `
	  AND schema_name NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
	  AND schema_name NOT LIKE 'pg_temp_%'
	  AND schema_name NOT LIKE 'pg_toast_temp_%'`

// matchAll reports whether pattern should be treated as "no filter",
// matching the Source interface's own doc comment: a best-effort "%"
// wildcard, plus the empty string the store passes for "every schema".
func matchAll(pattern string) bool {
	return pattern == "" || pattern == "%"
}

func likeArg(pattern string) string {
	if matchAll(pattern) {
		return ""
	}
	return pattern
}

// Schemas implements metadata.Source.
func (s *Source) Schemas(ctx context.Context, catalog, schemaPattern string) ([]metadata.SchemaRow, error) {
	query := `
		SELECT schema_name
		FROM information_schema.schemata
		WHERE schema_name NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
		  AND schema_name NOT LIKE 'pg_temp_%'
		  AND schema_name NOT LIKE 'pg_toast_temp_%'
		  AND ($1 = '' OR schema_name LIKE $1)
		ORDER BY schema_name`

	rows, err := s.db.QueryContext(ctx, query, likeArg(schemaPattern))
	if err != nil {
		return nil, fmt.Errorf("failed to query schemas: %w", err)
	}
	defer rows.Close()

	var out []metadata.SchemaRow
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan schema row: %w", err)
		}
		out = append(out, s.xform.TransformSchema(metadata.SchemaRow{TableSchem: name, TableCatalog: catalog}))
	}
	return out, rows.Err()
}

// Tables implements metadata.Source.
func (s *Source) Tables(ctx context.Context, catalog, schema, namePattern string) ([]metadata.TableRow, error) {
	query := `
		SELECT table_schema, table_name,
		       CASE table_type WHEN 'BASE TABLE' THEN 'TABLE' ELSE table_type END
		FROM information_schema.tables
		WHERE table_schema NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
		  AND table_schema NOT LIKE 'pg_temp_%'
		  AND ($1 = '' OR table_schema = $1)
		  AND ($2 = '' OR table_name LIKE $2)
		ORDER BY table_schema, table_name`

	rows, err := s.db.QueryContext(ctx, query, likeArg(schema), likeArg(namePattern))
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var out []metadata.TableRow
	for rows.Next() {
		var r metadata.TableRow
		r.TableCat = catalog
		if err := rows.Scan(&r.TableSchem, &r.TableName, &r.TableType); err != nil {
			return nil, fmt.Errorf("failed to scan table row: %w", err)
		}
		out = append(out, s.xform.TransformTable(r))
	}
	return out, rows.Err()
}

// Columns implements metadata.Source.
func (s *Source) Columns(ctx context.Context, catalog, schema, tablePattern string) ([]metadata.ColumnRow, error) {
	query := `
		SELECT c.table_schema, c.table_name, c.column_name, c.udt_name,
		       COALESCE(c.character_maximum_length, c.numeric_precision, 0),
		       COALESCE(c.numeric_scale, 0),
		       COALESCE(c.numeric_precision_radix, 0),
		       c.is_nullable, COALESCE(c.column_default, ''),
		       COALESCE(c.character_octet_length, 0),
		       c.ordinal_position,
		       CASE WHEN c.is_identity = 'YES' THEN 'YES' ELSE 'NO' END,
		       CASE WHEN c.is_generated = 'ALWAYS' THEN 'YES' ELSE 'NO' END
		FROM information_schema.columns c
		WHERE c.table_schema NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
		  AND c.table_schema NOT LIKE 'pg_temp_%'
		  AND ($1 = '' OR c.table_schema = $1)
		  AND ($2 = '' OR c.table_name LIKE $2)
		ORDER BY c.table_schema, c.table_name, c.ordinal_position`

	rows, err := s.db.QueryContext(ctx, query, likeArg(schema), likeArg(tablePattern))
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var out []metadata.ColumnRow
	for rows.Next() {
		var r metadata.ColumnRow
		var isNullable string
		r.TableCat = catalog
		if err := rows.Scan(
			&r.TableSchem, &r.TableName, &r.ColumnName, &r.TypeName,
			&r.ColumnSize, &r.DecimalDigits, &r.NumPrecRadix,
			&isNullable, &r.ColumnDef, &r.CharOctetLength, &r.OrdinalPosition,
			&r.IsAutoincrement, &r.IsGeneratedColumn,
		); err != nil {
			return nil, fmt.Errorf("failed to scan column row: %w", err)
		}
		r.IsNullable = isNullable
		if isNullable == "YES" {
			r.Nullable = metadata.ColumnNullable
		} else {
			r.Nullable = metadata.ColumnNoNulls
		}
		r.DataType = jdbcTypeCode(r.TypeName)
		out = append(out, s.xform.TransformColumn(r))
	}
	return out, rows.Err()
}

// PrimaryKeys implements metadata.Source.
func (s *Source) PrimaryKeys(ctx context.Context, catalog, schema, table string) ([]metadata.PrimaryKeyRow, error) {
	query := `
		SELECT tc.table_schema, tc.table_name, kcu.column_name,
		       kcu.ordinal_position, tc.constraint_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON kcu.constraint_name = tc.constraint_name
		 AND kcu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY'
		  AND tc.table_schema NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
		  AND ($1 = '' OR tc.table_schema = $1)
		  AND ($2 = '' OR tc.table_name LIKE $2)
		ORDER BY tc.table_schema, tc.table_name, kcu.ordinal_position`

	rows, err := s.db.QueryContext(ctx, query, likeArg(schema), likeArg(table))
	if err != nil {
		return nil, fmt.Errorf("failed to query primary keys: %w", err)
	}
	defer rows.Close()

	var out []metadata.PrimaryKeyRow
	for rows.Next() {
		var r metadata.PrimaryKeyRow
		r.TableCat = catalog
		if err := rows.Scan(&r.TableSchem, &r.TableName, &r.ColumnName, &r.KeySeq, &r.PKName); err != nil {
			return nil, fmt.Errorf("failed to scan primary key row: %w", err)
		}
		out = append(out, s.xform.TransformPrimaryKey(r))
	}
	return out, rows.Err()
}

// ExportedKeys implements metadata.Source: every foreign key declared
// anywhere in the catalog, JDBC's getExportedKeys() semantics widened to
// "all" rather than "belonging to one referenced table", since the store
// loads its whole universe in one pass.
func (s *Source) ExportedKeys(ctx context.Context, catalog, schema, table string) ([]metadata.ForeignKeyRow, error) {
	query := `
		SELECT
		  ccu.table_schema, ccu.table_name, ccu.column_name,
		  tc.table_schema, tc.table_name, kcu.column_name,
		  kcu.ordinal_position, rc.update_rule, rc.delete_rule,
		  tc.constraint_name, rc.unique_constraint_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON kcu.constraint_name = tc.constraint_name
		 AND kcu.table_schema = tc.table_schema
		JOIN information_schema.referential_constraints rc
		  ON rc.constraint_name = tc.constraint_name
		 AND rc.constraint_schema = tc.table_schema
		JOIN information_schema.constraint_column_usage ccu
		  ON ccu.constraint_name = rc.unique_constraint_name
		 AND ccu.table_schema = rc.unique_constraint_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
		  AND tc.table_schema NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
		  AND ($1 = '' OR tc.table_schema = $1)
		  AND ($2 = '' OR tc.table_name LIKE $2)
		ORDER BY tc.table_schema, tc.table_name, tc.constraint_name, kcu.ordinal_position`

	rows, err := s.db.QueryContext(ctx, query, likeArg(schema), likeArg(table))
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}
	defer rows.Close()

	var out []metadata.ForeignKeyRow
	for rows.Next() {
		var r metadata.ForeignKeyRow
		r.PKTableCat = catalog
		r.FKTableCat = catalog
		r.UpdateRule = metadata.ImportedKeyNoAction
		r.DeleteRule = metadata.ImportedKeyNoAction
		var updateRule, deleteRule string
		if err := rows.Scan(
			&r.PKTableSchem, &r.PKTableName, &r.PKColumnName,
			&r.FKTableSchem, &r.FKTableName, &r.FKColumnName,
			&r.KeySeq, &updateRule, &deleteRule, &r.FKName, &r.PKName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key row: %w", err)
		}
		r.UpdateRule = referentialActionCode(updateRule)
		r.DeleteRule = referentialActionCode(deleteRule)
		out = append(out, s.xform.TransformForeignKey(r))
	}
	return out, rows.Err()
}

// TypeInfo implements metadata.Source by enumerating pg_catalog's base
// types rather than the catalog-relative entries the other methods read,
// since types are global to the server, not scoped to a schema.
func (s *Source) TypeInfo(ctx context.Context) ([]metadata.TypeInfoRow, error) {
	query := `
		SELECT t.typname
		FROM pg_catalog.pg_type t
		JOIN pg_catalog.pg_namespace n ON n.oid = t.typnamespace
		WHERE n.nspname = 'pg_catalog'
		  AND t.typtype = 'b'
		  AND t.typarray != 0
		ORDER BY t.typname`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query type info: %w", err)
	}
	defer rows.Close()

	var out []metadata.TypeInfoRow
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan type info row: %w", err)
		}
		out = append(out, s.xform.TransformTypeInfo(metadata.TypeInfoRow{
			TypeName: name,
			DataType: jdbcTypeCode(name),
			Nullable: metadata.TypeNullable,
		}))
	}
	return out, rows.Err()
}

// IndexInfo implements metadata.Source.
func (s *Source) IndexInfo(ctx context.Context, catalog, schema, table string) ([]metadata.IndexInfoRow, error) {
	query := `
		SELECT schemaname, tablename, indexname, indexdef
		FROM pg_catalog.pg_indexes
		WHERE schemaname NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
		  AND ($1 = '' OR schemaname = $1)
		  AND ($2 = '' OR tablename = $2)
		ORDER BY schemaname, tablename, indexname`

	rows, err := s.db.QueryContext(ctx, query, likeArg(schema), likeArg(table))
	if err != nil {
		return nil, fmt.Errorf("failed to query index info: %w", err)
	}
	defer rows.Close()

	var out []metadata.IndexInfoRow
	for rows.Next() {
		var r metadata.IndexInfoRow
		var indexDef string
		r.TableCat = catalog
		if err := rows.Scan(&r.TableSchem, &r.TableName, &r.IndexName, &indexDef); err != nil {
			return nil, fmt.Errorf("failed to scan index info row: %w", err)
		}
		r.NonUnique = true
		out = append(out, s.xform.TransformIndexInfo(r))
	}
	return out, rows.Err()
}

// jdbcTypeCode maps a PostgreSQL type name to the small subset of
// java.sql.Types constants the metadata package borrows for its
// DataType field; these values are part of the public JDBC specification,
// not an invented scheme. Anything not in the table falls back to OTHER
// (1111), which is itself one of those published constants.
func jdbcTypeCode(pgTypeName string) int {
	switch pgTypeName {
	case "int2":
		return 5 // SMALLINT
	case "int4", "serial":
		return 4 // INTEGER
	case "int8", "bigserial":
		return -5 // BIGINT
	case "numeric", "decimal":
		return 2 // NUMERIC
	case "float4":
		return 7 // REAL
	case "float8":
		return 8 // DOUBLE
	case "bool":
		return 16 // BOOLEAN
	case "varchar", "text", "bpchar", "char":
		return 12 // VARCHAR
	case "date":
		return 91 // DATE
	case "time", "timetz":
		return 92 // TIME
	case "timestamp", "timestamptz":
		return 93 // TIMESTAMP
	case "bytea":
		return -2 // BINARY
	case "uuid", "json", "jsonb":
		return 1111 // OTHER
	default:
		return 1111 // OTHER
	}
}

// referentialActionCode maps information_schema.referential_constraints'
// textual update_rule/delete_rule to the matching
// metadata.ImportedKey* constant.
func referentialActionCode(rule string) int {
	switch rule {
	case "CASCADE":
		return metadata.ImportedKeyCascade
	case "RESTRICT":
		return metadata.ImportedKeyRestrict
	case "SET NULL":
		return metadata.ImportedKeySetNull
	case "SET DEFAULT":
		return metadata.ImportedKeySetDefault
	default:
		return metadata.ImportedKeyNoAction
	}
}
