package metadata

// RowTransformer lets a concrete metadata source sanitize or unify
// database-specific quirks in rows read off the wire before they reach
// the graph store. The default, zero-value transformer is a no-op;
// connectors override only what they need.
//
// It is fine for a transformer to mutate the row in place and return it.
type RowTransformer interface {
	TransformTable(row TableRow) TableRow
	TransformColumn(row ColumnRow) ColumnRow
	TransformPrimaryKey(row PrimaryKeyRow) PrimaryKeyRow
	TransformForeignKey(row ForeignKeyRow) ForeignKeyRow
	TransformTypeInfo(row TypeInfoRow) TypeInfoRow
	TransformIndexInfo(row IndexInfoRow) IndexInfoRow
	TransformCatalog(row CatalogRow) CatalogRow
	TransformSchema(row SchemaRow) SchemaRow
}

// IdentityTransformer is the default RowTransformer: every method returns
// its input unchanged.
type IdentityTransformer struct{}

func (IdentityTransformer) TransformTable(row TableRow) TableRow             { return row }
func (IdentityTransformer) TransformColumn(row ColumnRow) ColumnRow          { return row }
func (IdentityTransformer) TransformPrimaryKey(row PrimaryKeyRow) PrimaryKeyRow { return row }
func (IdentityTransformer) TransformForeignKey(row ForeignKeyRow) ForeignKeyRow { return row }
func (IdentityTransformer) TransformTypeInfo(row TypeInfoRow) TypeInfoRow    { return row }
func (IdentityTransformer) TransformIndexInfo(row IndexInfoRow) IndexInfoRow { return row }
func (IdentityTransformer) TransformCatalog(row CatalogRow) CatalogRow       { return row }
func (IdentityTransformer) TransformSchema(row SchemaRow) SchemaRow         { return row }
