package graph

// NodeKind tags every node in the database graph.
type NodeKind string

const (
	KindSchema NodeKind = "schema"
	KindTable  NodeKind = "table"
	KindColumn NodeKind = "column"
	KindPK     NodeKind = "pk"
	KindFK     NodeKind = "fk"
	KindIndex  NodeKind = "index"
	KindType   NodeKind = "type"
)

// EdgeKind tags every directed edge in the database graph.
type EdgeKind string

const (
	// EdgeSchemaTable connects a schema to a table it owns.
	EdgeSchemaTable EdgeKind = "schema-table"
	// EdgeTableColumn connects a table to one of its columns.
	EdgeTableColumn EdgeKind = "table-column"
	// EdgeColumnTable is the inverse of EdgeTableColumn.
	EdgeColumnTable EdgeKind = "column-table"
	// EdgeColumnType connects a column to its type node.
	EdgeColumnType EdgeKind = "column-type"
	// EdgeTablePK connects a table to its primary key node.
	EdgeTablePK EdgeKind = "table-pk"
	// EdgePKColumn connects a primary key to a member column; carries
	// KeySeq in its attributes.
	EdgePKColumn EdgeKind = "pk-column"
	// EdgeTableFK connects the referencing table to the foreign key node.
	EdgeTableFK EdgeKind = "table-fk"
	// EdgeFKTable connects the foreign key node to the referenced table.
	EdgeFKTable EdgeKind = "fk-table"
	// EdgeColumnFK connects a referencing column to the foreign key node.
	EdgeColumnFK EdgeKind = "column-fk"
	// EdgeFKColumn connects the foreign key node to a referenced column.
	EdgeFKColumn EdgeKind = "fk-column"
	// EdgeReference connects a referencing column directly to the
	// referenced column.
	EdgeReference EdgeKind = "reference"
	// EdgeReferenceBy is the reverse of EdgeReference.
	EdgeReferenceBy EdgeKind = "reference-by"
)

// VisitOrder is the canonical order in which sibling node groups are
// visited when a node has outgoing edges to destinations of more than
// one kind: schema, table, column, pk, fk. Index and type nodes are
// leaves of the standard navigation and never need tie-breaking here.
var VisitOrder = []NodeKind{KindSchema, KindTable, KindColumn, KindPK, KindFK}
