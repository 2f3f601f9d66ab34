package graph

import "github.com/schemagraph/schemagraph/metadata"

// The attrFrom* helpers project a typed metadata record into the
// map[string]any attribute bag used for node/edge export. They are
// explicit rather than reflection-based so the field list stays in sync
// with metadata.records.go at compile time.

func attrsFromSchema(r metadata.SchemaRow) map[string]any {
	return map[string]any{
		"table_schem":   r.TableSchem,
		"table_catalog": r.TableCatalog,
	}
}

func attrsFromTable(r metadata.TableRow) map[string]any {
	return map[string]any{
		"table_cat":                  r.TableCat,
		"table_schem":                r.TableSchem,
		"table_name":                 r.TableName,
		"table_type":                 r.TableType,
		"remarks":                    r.Remarks,
		"type_cat":                   r.TypeCat,
		"type_schem":                 r.TypeSchem,
		"type_name":                  r.TypeName,
		"self_referencing_col_name":  r.SelfReferencingColName,
		"ref_generation":             r.RefGeneration,
	}
}

func attrsFromColumn(r metadata.ColumnRow) map[string]any {
	return map[string]any{
		"table_cat":           r.TableCat,
		"table_schem":         r.TableSchem,
		"table_name":          r.TableName,
		"column_name":         r.ColumnName,
		"data_type":           r.DataType,
		"type_name":           r.TypeName,
		"column_size":         r.ColumnSize,
		"decimal_digits":      r.DecimalDigits,
		"num_prec_radix":      r.NumPrecRadix,
		"nullable":            r.Nullable,
		"remarks":             r.Remarks,
		"column_def":          r.ColumnDef,
		"char_octet_length":   r.CharOctetLength,
		"ordinal_position":    r.OrdinalPosition,
		"is_nullable":         r.IsNullable,
		"is_autoincrement":    r.IsAutoincrement,
		"is_generatedcolumn":  r.IsGeneratedColumn,
	}
}

func attrsFromType(r metadata.TypeInfoRow) map[string]any {
	return map[string]any{
		"type_name":           r.TypeName,
		"data_type":           r.DataType,
		"precision":           r.Precision,
		"literal_prefix":      r.LiteralPrefix,
		"literal_suffix":      r.LiteralSuffix,
		"nullable":            r.Nullable,
		"case_sensitive":      r.CaseSensitive,
		"unsigned_attribute":  r.UnsignedAttribute,
		"fixed_prec_scale":    r.FixedPrecScale,
		"auto_increment":      r.AutoIncrement,
		"local_type_name":     r.LocalTypeName,
	}
}

func attrsFromPKRow(r metadata.PrimaryKeyRow) map[string]any {
	return map[string]any{
		"table_cat":   r.TableCat,
		"table_schem": r.TableSchem,
		"table_name":  r.TableName,
		"column_name": r.ColumnName,
		"key_seq":     r.KeySeq,
		"pk_name":     r.PKName,
	}
}

func attrsFromFKRow(r metadata.ForeignKeyRow) map[string]any {
	return map[string]any{
		"pktable_cat":   r.PKTableCat,
		"pktable_schem": r.PKTableSchem,
		"pktable_name":  r.PKTableName,
		"pkcolumn_name": r.PKColumnName,
		"fktable_cat":   r.FKTableCat,
		"fktable_schem": r.FKTableSchem,
		"fktable_name":  r.FKTableName,
		"fkcolumn_name": r.FKColumnName,
		"key_seq":       r.KeySeq,
		"update_rule":   r.UpdateRule,
		"delete_rule":   r.DeleteRule,
		"fk_name":       r.FKName,
		"pk_name":       r.PKName,
	}
}
