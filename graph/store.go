package graph

import (
	"context"
	"io"

	"github.com/schemagraph/schemagraph/internal/bundle"
	"github.com/schemagraph/schemagraph/metadata"
)

// Store owns the raw metadata rows the graph is built from. It is
// populated exactly once — either from a live metadata.Source or from a
// persisted bundle — and is immutable thereafter. It maintains two
// eager indexes: id -> record (union of all kinds) and kind -> ids.
type Store struct {
	schemas map[NodeID]metadata.SchemaRow
	tables  map[NodeID]metadata.TableRow
	columns map[NodeID]metadata.ColumnRow
	pks     map[NodeID][]metadata.PrimaryKeyRow
	fks     map[NodeID][]metadata.ForeignKeyRow
	types   map[NodeID]metadata.TypeInfoRow
	indexes map[NodeID][]metadata.IndexInfoRow

	product *metadata.ProductInfo
	driver  *metadata.DriverInfo

	nodeIdx     map[NodeID]any
	nodeByKind  map[NodeKind][]NodeID
	hasData     bool
}

// NewStore creates an empty, not-yet-loaded store.
func NewStore() *Store {
	return &Store{}
}

// IsEmpty reports whether the store has not yet been loaded.
func (s *Store) IsEmpty() bool { return !s.hasData }

func rowKey[T any](m map[NodeID]T, id NodeID, row T) {
	m[id] = row
}

// Load populates the store directly from already-fetched metadata rows
// (the in-memory counterpart of LoadFromSource/LoadBundle). When schemas
// is empty but tables is not (a database with no explicit schema layer),
// a synthetic schema row with an empty TableSchem is injected so every
// table still has a parent, per the connector contract.
func (s *Store) Load(
	catalog string,
	schemas []metadata.SchemaRow,
	tables []metadata.TableRow,
	columns []metadata.ColumnRow,
	pks []metadata.PrimaryKeyRow,
	fks []metadata.ForeignKeyRow,
	types []metadata.TypeInfoRow,
) {
	s.schemas = make(map[NodeID]metadata.SchemaRow)
	s.tables = make(map[NodeID]metadata.TableRow)
	s.columns = make(map[NodeID]metadata.ColumnRow)
	s.pks = make(map[NodeID][]metadata.PrimaryKeyRow)
	s.fks = make(map[NodeID][]metadata.ForeignKeyRow)
	s.types = make(map[NodeID]metadata.TypeInfoRow)
	s.indexes = make(map[NodeID][]metadata.IndexInfoRow)

	for _, row := range schemas {
		rowKey(s.schemas, SchemaID(row.TableCatalog, row.TableSchem), row)
	}

	if len(s.schemas) == 0 && len(tables) > 0 {
		id := SchemaID(catalog, "")
		s.schemas[id] = metadata.SchemaRow{TableCatalog: catalog, TableSchem: ""}
	}

	for _, row := range tables {
		rowKey(s.tables, TableID(row.TableCat, row.TableSchem, row.TableName), row)
	}
	for _, row := range columns {
		rowKey(s.columns, ColumnID(row.TableCat, row.TableSchem, row.TableName, row.ColumnName), row)
	}
	for _, row := range pks {
		id := PKID(row.TableCat, row.TableSchem, row.TableName, row.PKName)
		s.pks[id] = append(s.pks[id], row)
	}
	for _, row := range fks {
		id := FKID(row.FKTableCat, row.FKTableSchem, row.FKTableName, row.FKName)
		s.fks[id] = append(s.fks[id], row)
	}
	for _, row := range types {
		rowKey(s.types, TypeID(row.TypeName), row)
	}

	s.hasData = true
	s.createIndexes()
}

// LoadFromSource populates the store from a live metadata.Source,
// issuing one call per JDBC-style result set. This is the only step in
// the analyzer's lifecycle that blocks on I/O; ctx governs cancellation
// of those calls.
func (s *Store) LoadFromSource(ctx context.Context, src metadata.Source, catalog string) error {
	schemas, err := src.Schemas(ctx, catalog, "")
	if err != nil {
		return err
	}
	tables, err := src.Tables(ctx, catalog, "", "%")
	if err != nil {
		return err
	}
	columns, err := src.Columns(ctx, catalog, "", "%")
	if err != nil {
		return err
	}
	pks, err := src.PrimaryKeys(ctx, catalog, "", "%")
	if err != nil {
		return err
	}
	fks, err := src.ExportedKeys(ctx, catalog, "", "%")
	if err != nil {
		return err
	}
	types, err := src.TypeInfo(ctx)
	if err != nil {
		return err
	}

	s.Load(catalog, schemas, tables, columns, pks, fks, types)

	for _, t := range tables {
		idx, err := src.IndexInfo(ctx, t.TableCat, t.TableSchem, t.TableName)
		if err != nil {
			return err
		}
		for _, row := range idx {
			id := IndexID(row.TableCat, row.TableSchem, row.TableName, row.IndexName)
			s.indexes[id] = append(s.indexes[id], row)
		}
	}
	s.createIndexes()

	return nil
}

// DumpBundle serializes the store's raw metadata into a lossless byte
// stream. Returns an *EmptyStoreError if nothing has been loaded yet.
func (s *Store) DumpBundle(w io.Writer) error {
	if s.IsEmpty() {
		return &EmptyStoreError{}
	}
	return bundle.Dump(w, bundle.Bundle{
		Schemas: valuesOf(s.schemas),
		Tables:  valuesOf(s.tables),
		Columns: valuesOf(s.columns),
		PKs:     flattenValues(s.pks),
		FKs:     flattenValues(s.fks),
		Types:   valuesOf(s.types),
	})
}

// LoadBundle populates the store by deserializing a byte stream
// previously produced by DumpBundle (or any producer of the same format).
func (s *Store) LoadBundle(catalog string, r io.Reader) error {
	b, err := bundle.Load(r)
	if err != nil {
		return err
	}
	s.Load(catalog, b.Schemas, b.Tables, b.Columns, b.PKs, b.FKs, b.Types)
	return nil
}

func valuesOf[T any](m map[NodeID]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func flattenValues[T any](m map[NodeID][]T) []T {
	out := make([]T, 0, len(m))
	for _, rows := range m {
		out = append(out, rows...)
	}
	return out
}

func (s *Store) createIndexes() {
	s.nodeByKind = map[NodeKind][]NodeID{
		KindSchema: idsOf(s.schemas),
		KindTable:  idsOf(s.tables),
		KindColumn: idsOf(s.columns),
		KindPK:     idsOfKeys(s.pks),
		KindFK:     idsOfKeys(s.fks),
		KindType:   idsOf(s.types),
		KindIndex:  idsOfKeys(s.indexes),
	}

	s.nodeIdx = make(map[NodeID]any)
	for id, row := range s.schemas {
		s.nodeIdx[id] = row
	}
	for id, row := range s.tables {
		s.nodeIdx[id] = row
	}
	for id, row := range s.columns {
		s.nodeIdx[id] = row
	}
	for id, rows := range s.pks {
		s.nodeIdx[id] = rows
	}
	for id, rows := range s.fks {
		s.nodeIdx[id] = rows
	}
	for id, row := range s.types {
		s.nodeIdx[id] = row
	}
	for id, rows := range s.indexes {
		s.nodeIdx[id] = rows
	}
}

func idsOf[T any](m map[NodeID]T) []NodeID {
	out := make([]NodeID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	return out
}

func idsOfKeys[T any](m map[NodeID][]T) []NodeID {
	out := make([]NodeID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	return out
}

// NodesByKind returns every node id the store knows about for the given
// kinds, in no particular order.
func (s *Store) NodesByKind(kinds ...NodeKind) []NodeID {
	var result []NodeID
	for _, k := range kinds {
		result = append(result, s.nodeByKind[k]...)
	}
	return result
}

// NodeMetadata returns the raw metadata record for the given node id:
// the row itself for schema/table/column/type nodes, or []PrimaryKeyRow /
// []ForeignKeyRow for pk/fk nodes (the full member-row list).
func (s *Store) NodeMetadata(id NodeID) (any, error) {
	v, ok := s.nodeIdx[id]
	if !ok {
		return nil, &LookupError{ID: id}
	}
	return v, nil
}

// Schemas exposes the schema rows indexed by node id.
func (s *Store) Schemas() map[NodeID]metadata.SchemaRow { return s.schemas }

// Tables exposes the table rows indexed by node id.
func (s *Store) Tables() map[NodeID]metadata.TableRow { return s.tables }

// Columns exposes the column rows indexed by node id.
func (s *Store) Columns() map[NodeID]metadata.ColumnRow { return s.columns }

// PKs exposes the primary-key member rows, grouped by pk node id.
func (s *Store) PKs() map[NodeID][]metadata.PrimaryKeyRow { return s.pks }

// FKs exposes the foreign-key member rows, grouped by fk node id.
func (s *Store) FKs() map[NodeID][]metadata.ForeignKeyRow { return s.fks }

// Types exposes the type-info rows indexed by node id.
func (s *Store) Types() map[NodeID]metadata.TypeInfoRow { return s.types }

// IndexRows exposes the index-info member rows, grouped by index node id.
// Carried for completeness with the original metadata surface; the graph
// builder does not require it to build the seven spec node kinds.
func (s *Store) IndexRows() map[NodeID][]metadata.IndexInfoRow { return s.indexes }

// SetProductInfo records the product-level metadata (name/version) a
// live connector may have gathered alongside the result sets.
func (s *Store) SetProductInfo(p metadata.ProductInfo) { s.product = &p }

// ProductInfo returns the product-level metadata, if any was recorded.
func (s *Store) ProductInfo() (metadata.ProductInfo, bool) {
	if s.product == nil {
		return metadata.ProductInfo{}, false
	}
	return *s.product, true
}

// SetDriverInfo records the driver-level metadata a live connector may
// have gathered alongside the result sets.
func (s *Store) SetDriverInfo(d metadata.DriverInfo) { s.driver = &d }

// DriverInfo returns the driver-level metadata, if any was recorded.
func (s *Store) DriverInfo() (metadata.DriverInfo, bool) {
	if s.driver == nil {
		return metadata.DriverInfo{}, false
	}
	return *s.driver, true
}
