package graph

// PlaceholderType records a type node the builder had to synthesize
// because a column referenced a type name absent from the store's type
// table. This is the ignorable anomaly of spec.md §7: flagged, not
// raised.
type PlaceholderType struct {
	ID       NodeID
	TypeName string
}

// Build constructs the typed directed graph from a populated Store, in
// the fixed insertion order: types (optional), schemas, tables (+
// schema-table edges), columns (+ table-column/column-table edges,
// column-type edges when includeTypeNodes), primary keys, foreign keys.
//
// A missing parent (table's schema, column's table, key's table/column)
// is metadata corruption: Build returns a *StructuralError and no graph.
func Build(store *Store, includeTypeNodes bool) (*Graph, []PlaceholderType, error) {
	g := newGraph(store)
	var placeholders []PlaceholderType
	synthesized := make(map[NodeID]bool)

	if includeTypeNodes {
		for id, row := range store.Types() {
			g.addNode(id, KindType, attrsFromType(row))
		}
	}

	for id, row := range store.Schemas() {
		g.addNode(id, KindSchema, attrsFromSchema(row))
	}

	for id, row := range store.Tables() {
		schemaID := SchemaID(row.TableCat, row.TableSchem)
		if !g.HasNode(schemaID) {
			return nil, nil, newStructuralError(
				"table %q has no parent schema %q in the store", id, schemaID)
		}
		g.addNode(id, KindTable, attrsFromTable(row))
		g.addEdge(schemaID, id, EdgeSchemaTable, nil)
	}

	for id, row := range store.Columns() {
		tableID := TableID(row.TableCat, row.TableSchem, row.TableName)
		if !g.HasNode(tableID) {
			return nil, nil, newStructuralError(
				"column %q has no parent table %q in the store", id, tableID)
		}
		g.addNode(id, KindColumn, attrsFromColumn(row))
		g.addEdge(tableID, id, EdgeTableColumn, nil)
		g.addEdge(id, tableID, EdgeColumnTable, nil)

		if includeTypeNodes {
			typeID := TypeID(row.TypeName)
			if !g.HasNode(typeID) {
				if !synthesized[typeID] {
					synthesized[typeID] = true
					g.addNode(typeID, KindType, map[string]any{"placeholder": true})
					placeholders = append(placeholders, PlaceholderType{ID: typeID, TypeName: row.TypeName})
				}
			}
			g.addEdge(id, typeID, EdgeColumnType, nil)
		}
	}

	for id, rows := range store.PKs() {
		if len(rows) == 0 {
			continue
		}
		first := rows[0]
		tableID := TableID(first.TableCat, first.TableSchem, first.TableName)
		if !g.HasNode(tableID) {
			return nil, nil, newStructuralError(
				"primary key %q has no parent table %q in the store", id, tableID)
		}

		g.addNode(id, KindPK, map[string]any{"pk_name": first.PKName})
		g.addEdge(tableID, id, EdgeTablePK, nil)

		for _, row := range rows {
			colID := ColumnID(row.TableCat, row.TableSchem, row.TableName, row.ColumnName)
			if !g.HasNode(colID) {
				return nil, nil, newStructuralError(
					"primary key %q references missing column %q", id, colID)
			}
			g.addEdge(id, colID, EdgePKColumn, attrsFromPKRow(row))
		}
	}

	for id, rows := range store.FKs() {
		if len(rows) == 0 {
			continue
		}
		first := rows[0]
		pkTableID := TableID(first.PKTableCat, first.PKTableSchem, first.PKTableName)
		fkTableID := TableID(first.FKTableCat, first.FKTableSchem, first.FKTableName)
		if !g.HasNode(fkTableID) {
			return nil, nil, newStructuralError(
				"foreign key %q has no referencing table %q in the store", id, fkTableID)
		}
		if !g.HasNode(pkTableID) {
			return nil, nil, newStructuralError(
				"foreign key %q references missing table %q", id, pkTableID)
		}

		g.addNode(id, KindFK, map[string]any{"fk_name": first.FKName})
		g.addEdge(fkTableID, id, EdgeTableFK, nil)
		g.addEdge(id, pkTableID, EdgeFKTable, nil)

		for _, row := range rows {
			fkColID := ColumnID(row.FKTableCat, row.FKTableSchem, row.FKTableName, row.FKColumnName)
			pkColID := ColumnID(row.PKTableCat, row.PKTableSchem, row.PKTableName, row.PKColumnName)
			if !g.HasNode(fkColID) {
				return nil, nil, newStructuralError(
					"foreign key %q references missing referencing column %q", id, fkColID)
			}
			if !g.HasNode(pkColID) {
				return nil, nil, newStructuralError(
					"foreign key %q references missing referenced column %q", id, pkColID)
			}

			attrs := attrsFromFKRow(row)
			g.addEdge(fkColID, id, EdgeColumnFK, attrs)
			g.addEdge(id, pkColID, EdgeFKColumn, attrs)
			g.addEdge(fkColID, pkColID, EdgeReference, attrs)
			g.addEdge(pkColID, fkColID, EdgeReferenceBy, attrs)
		}
	}

	return g, placeholders, nil
}
