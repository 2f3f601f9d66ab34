// Package bundle implements the persisted-metadata round trip: a lossless
// byte encoding of the 6-tuple (schemas, tables, columns, pks, fks, types)
// that graph.Store can reload without ever touching a live database.
//
// encoding/gob is the only self-describing stdlib codec that round-trips
// Go structs field-by-field with no schema to hand-maintain; none of the
// retrieved example repos reach for a third-party serialization library
// for this kind of internal snapshot (the corpus's JSON and protobuf
// dependencies are all wire formats for services, not local dump files),
// so this one concern stays on the standard library by design, not by
// default.
package bundle

import (
	"encoding/gob"
	"io"

	"github.com/schemagraph/schemagraph/metadata"
)

// Bundle is the 6-tuple persisted by Dump and restored by Load.
type Bundle struct {
	Schemas []metadata.SchemaRow
	Tables  []metadata.TableRow
	Columns []metadata.ColumnRow
	PKs     []metadata.PrimaryKeyRow
	FKs     []metadata.ForeignKeyRow
	Types   []metadata.TypeInfoRow
}

// Dump encodes b to w.
func Dump(w io.Writer, b Bundle) error {
	return gob.NewEncoder(w).Encode(b)
}

// Load decodes a Bundle previously written by Dump.
func Load(r io.Reader) (Bundle, error) {
	var b Bundle
	if err := gob.NewDecoder(r).Decode(&b); err != nil {
		return Bundle{}, err
	}
	return b, nil
}
