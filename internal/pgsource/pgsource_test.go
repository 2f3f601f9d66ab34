package pgsource

import (
	"testing"

	"github.com/schemagraph/schemagraph/metadata"
)

func TestJDBCTypeCodeMapsKnownPostgresTypes(t *testing.T) {
	cases := map[string]int{
		"int2":        5,
		"int4":        4,
		"serial":      4,
		"int8":        -5,
		"bigserial":   -5,
		"numeric":     2,
		"decimal":     2,
		"float4":      7,
		"float8":      8,
		"bool":        16,
		"varchar":     12,
		"text":        12,
		"date":        91,
		"timestamptz": 93,
		"bytea":       -2,
		"jsonb":       1111,
		"some_enum":   1111,
	}
	for typeName, want := range cases {
		if got := jdbcTypeCode(typeName); got != want {
			t.Errorf("jdbcTypeCode(%q) = %d, want %d", typeName, got, want)
		}
	}
}

func TestReferentialActionCodeMapsKnownRules(t *testing.T) {
	cases := map[string]int{
		"CASCADE":     metadata.ImportedKeyCascade,
		"RESTRICT":    metadata.ImportedKeyRestrict,
		"SET NULL":    metadata.ImportedKeySetNull,
		"SET DEFAULT": metadata.ImportedKeySetDefault,
		"NO ACTION":   metadata.ImportedKeyNoAction,
		"":            metadata.ImportedKeyNoAction,
	}
	for rule, want := range cases {
		if got := referentialActionCode(rule); got != want {
			t.Errorf("referentialActionCode(%q) = %d, want %d", rule, got, want)
		}
	}
}

func TestMatchAllTreatsEmptyAndPercentAsNoFilter(t *testing.T) {
	for _, pattern := range []string{"", "%"} {
		if !matchAll(pattern) {
			t.Errorf("matchAll(%q) = false, want true", pattern)
		}
	}
	if matchAll("public") {
		t.Error("matchAll(\"public\") = true, want false")
	}
}

func TestLikeArgClearsWildcardPatterns(t *testing.T) {
	if got := likeArg("%"); got != "" {
		t.Errorf("likeArg(%%) = %q, want empty", got)
	}
	if got := likeArg("public"); got != "public" {
		t.Errorf("likeArg(public) = %q, want public", got)
	}
}

// upperCaseSchemaTransformer appends "!" to every TableSchem it sees,
// a stand-in for a real connector-specific quirk, used only to confirm
// NewWithTransformer actually wires a non-identity transform in.
type upperCaseSchemaTransformer struct {
	metadata.IdentityTransformer
	calls int
}

func (u *upperCaseSchemaTransformer) TransformSchema(row metadata.SchemaRow) metadata.SchemaRow {
	u.calls++
	row.TableSchem = row.TableSchem + "!"
	return row
}

func TestNewWithTransformerAppliesCustomTransform(t *testing.T) {
	xform := &upperCaseSchemaTransformer{}
	src := NewWithTransformer(nil, xform)
	if src.xform != xform {
		t.Fatal("expected the source to retain the supplied transformer")
	}

	got := src.xform.TransformSchema(metadata.SchemaRow{TableSchem: "public"})
	if got.TableSchem != "public!" {
		t.Errorf("expected transform to run, got %q", got.TableSchem)
	}
	if xform.calls != 1 {
		t.Errorf("expected the transformer to be invoked once, got %d", xform.calls)
	}
}

func TestNewWithTransformerNilFallsBackToIdentity(t *testing.T) {
	src := NewWithTransformer(nil, nil)
	row := metadata.SchemaRow{TableSchem: "public", TableCatalog: "cat"}
	if got := src.xform.TransformSchema(row); got != row {
		t.Errorf("expected identity transform, got %+v", got)
	}
}
