// Package metadata defines the immutable record types returned by a
// JDBC-style relational metadata source: catalogs, schemas, tables,
// columns, primary keys, foreign keys, and type information. These are
// the raw rows the graph package turns into a typed directed graph.
package metadata

// CatalogRow is one row of a getCatalogs()-style result set.
type CatalogRow struct {
	TableCat string
}

// SchemaRow is one row of a getSchemas()-style result set.
type SchemaRow struct {
	TableSchem   string // may be empty; empty normalizes to "@" in composite ids
	TableCatalog string
}

// TableRow is one row of a getTables()-style result set. Field layout
// mirrors JDBC's DatabaseMetaData.getTables(), ten columns ending with
// RefGeneration.
type TableRow struct {
	TableCat               string
	TableSchem             string
	TableName              string
	TableType              string
	Remarks                string
	TypeCat                string
	TypeSchem              string
	TypeName               string
	SelfReferencingColName string
	RefGeneration          string
}

// ColumnRow is one row of a getColumns()-style result set. Field layout
// mirrors JDBC's DatabaseMetaData.getColumns(), 24 columns ending with
// IsGeneratedColumn.
type ColumnRow struct {
	TableCat          string
	TableSchem        string
	TableName         string
	ColumnName        string
	DataType          int
	TypeName          string
	ColumnSize        int
	BufferLength      int
	DecimalDigits     int
	NumPrecRadix      int
	Nullable          int
	Remarks           string
	ColumnDef         string
	SQLDataType       int
	SQLDatetimeSub    int
	CharOctetLength   int
	OrdinalPosition   int
	IsNullable        string
	ScopeCatalog      string
	ScopeSchema       string
	ScopeTable        string
	SourceDataType    int
	IsAutoincrement   string
	IsGeneratedColumn string
}

// PrimaryKeyRow is one row of a getPrimaryKeys()-style result set: one
// row per column participating in a (possibly composite) primary key.
type PrimaryKeyRow struct {
	TableCat   string
	TableSchem string
	TableName  string
	ColumnName string
	KeySeq     int
	PKName     string
}

// ForeignKeyRow is one row of a getExportedKeys()-style result set: one
// row per column pair participating in a (possibly composite) foreign
// key. Note the naming follows JDBC's PK/FK terminology where "PK" side
// is the referenced table and "FK" side is the referencing table.
type ForeignKeyRow struct {
	PKTableCat    string
	PKTableSchem  string
	PKTableName   string
	PKColumnName  string
	FKTableCat    string
	FKTableSchem  string
	FKTableName   string
	FKColumnName  string
	KeySeq        int
	UpdateRule    int
	DeleteRule    int
	FKName        string
	PKName        string
	Deferrability int
}

// TypeInfoRow is one row of a getTypeInfo()-style result set, 18 columns.
type TypeInfoRow struct {
	TypeName          string
	DataType          int
	Precision         int
	LiteralPrefix     string
	LiteralSuffix     string
	CreateParams      string
	Nullable          int
	CaseSensitive     bool
	Searchable        int
	UnsignedAttribute bool
	FixedPrecScale    bool
	AutoIncrement     bool
	LocalTypeName     string
	MinimumScale      int
	MaximumScale      int
	SQLDataType       int
	SQLDatetimeSub    int
	NumPrecRadix      int
}

// IndexInfoRow is one row of a getIndexInfo()-style result set. Carried
// as reference data alongside the seven node-bearing record kinds: the
// graph Store holds these rows (filled by LoadFromSource), but the graph
// builder adds no index nodes and the sub-model extractor does not use
// them.
type IndexInfoRow struct {
	TableCat        string
	TableSchem      string
	TableName       string
	NonUnique       bool
	IndexQualifier  string
	IndexName       string
	Type            int
	OrdinalPosition int
	ColumnName      string
	AscOrDesc       string
	Cardinality     int64
	Pages           int64
	FilterCondition string
}

// VersionColumnRow is one row of a getVersionColumns()-style result set.
// Carried for completeness with the original metadata surface; unused by
// the graph builder.
type VersionColumnRow struct {
	Scope         int
	ColumnName    string
	DataType      int
	TypeName      string
	ColumnSize    int
	BufferLength  int
	DecimalDigits int
	PseudoColumn  int
}

// ProductInfo bundles the four pieces of JDBC product metadata
// (getDatabaseProductName/Version/MajorVersion/MinorVersion).
type ProductInfo struct {
	ProductName    string
	ProductVersion string
	MajorVersion   int
	MinorVersion   int
}

// DriverInfo bundles the six pieces of JDBC driver metadata.
type DriverInfo struct {
	DriverName      string
	DriverVersion   string
	MajorVersion    int
	MinorVersion    int
	JDBCMajorVer    int
	JDBCMinorVer    int
}

// Constants mirrors the handful of JDBC DatabaseMetaData static constants
// callers may need when interpreting Nullable/UpdateRule/DeleteRule
// fields above.
const (
	ColumnNoNulls         = 0
	ColumnNullable        = 1
	ColumnNullableUnknown = 2

	ImportedKeyCascade            = 0
	ImportedKeyRestrict           = 1
	ImportedKeySetNull            = 2
	ImportedKeyNoAction           = 3
	ImportedKeySetDefault         = 4
	ImportedKeyInitiallyDeferred  = 5
	ImportedKeyInitiallyImmediate = 6
	ImportedKeyNotDeferrable      = 7

	TypeNoNulls         = 0
	TypeNullable        = 1
	TypeNullableUnknown = 2

	TableIndexStatistic = 0
	TableIndexClustered = 1
	TableIndexHashed    = 2
	TableIndexOther     = 3
)
