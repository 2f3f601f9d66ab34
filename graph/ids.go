package graph

import "strings"

// NodeID is the stable composite identifier of a graph node: opaque at
// the API boundary so third-party graph/exchange formats can use it
// verbatim, but always of the form "<kind>://<cat>.<schema-or-@>.<rest...>".
// Identifier equality is the sole notion of node identity used throughout
// this package.
type NodeID string

func sanitizeSchema(schema string) string {
	if schema == "" {
		return "@"
	}
	return schema
}

func compositeID(kind NodeKind, cat, schema string, rest ...string) NodeID {
	parts := make([]string, 0, 2+len(rest))
	parts = append(parts, cat, sanitizeSchema(schema))
	parts = append(parts, rest...)
	return NodeID(string(kind) + "://" + strings.Join(parts, "."))
}

// SchemaID computes the composite id of a schema node.
func SchemaID(catalog, schema string) NodeID {
	return compositeID(KindSchema, catalog, schema)
}

// TableID computes the composite id of a table node.
func TableID(catalog, schema, table string) NodeID {
	return compositeID(KindTable, catalog, schema, table)
}

// ColumnID computes the composite id of a column node.
func ColumnID(catalog, schema, table, column string) NodeID {
	return compositeID(KindColumn, catalog, schema, table, column)
}

// PKID computes the composite id of a primary-key node. An unnamed key
// uses "@" in place of the key name.
func PKID(catalog, schema, table, pkName string) NodeID {
	if pkName == "" {
		pkName = "@"
	}
	return compositeID(KindPK, catalog, schema, table, pkName)
}

// FKID computes the composite id of a foreign-key node. An unnamed key
// uses "@" in place of the key name.
func FKID(catalog, schema, table, fkName string) NodeID {
	if fkName == "" {
		fkName = "@"
	}
	return compositeID(KindFK, catalog, schema, table, fkName)
}

// IndexID computes the composite id of an index node.
func IndexID(catalog, schema, table, indexName string) NodeID {
	if indexName == "" {
		indexName = "@"
	}
	return compositeID(KindIndex, catalog, schema, table, indexName)
}

// TypeID computes the composite id of a type node. Types have no
// catalog/schema component: only the type name uniquely identifies them.
func TypeID(typeName string) NodeID {
	return NodeID(string(KindType) + "://" + typeName)
}
