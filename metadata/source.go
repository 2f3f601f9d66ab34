package metadata

import "context"

// Source is the capability a live database connector must expose so the
// graph store can populate itself without depending on how the
// connection was made. Each method mirrors one JDBC DatabaseMetaData
// result set, filtered by the usual catalog/schema/name-pattern triple.
//
// Implementations only need to support a best-effort "%" wildcard for
// unset patterns; the store always passes a concrete catalog.
type Source interface {
	Schemas(ctx context.Context, catalog, schemaPattern string) ([]SchemaRow, error)
	Tables(ctx context.Context, catalog, schema, namePattern string) ([]TableRow, error)
	Columns(ctx context.Context, catalog, schema, tablePattern string) ([]ColumnRow, error)
	PrimaryKeys(ctx context.Context, catalog, schema, table string) ([]PrimaryKeyRow, error)
	ExportedKeys(ctx context.Context, catalog, schema, table string) ([]ForeignKeyRow, error)
	TypeInfo(ctx context.Context) ([]TypeInfoRow, error)
	IndexInfo(ctx context.Context, catalog, schema, table string) ([]IndexInfoRow, error)
}
