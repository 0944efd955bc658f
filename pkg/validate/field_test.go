package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratacloud/netschema/pkg/schema"
)

func TestEvalField_String(t *testing.T) {
	fc := schema.String("name", schema.Pattern(`[a-z]+`), schema.MaxLen(5))

	tests := []struct {
		name string
		raw  any
		want ViolationKind
	}{
		{"valid", "abc", ""},
		{"wrong type", 42, TypeMismatch},
		{"pattern mismatch", "ABC", PatternMismatch},
		{"too long", "abcdefgh", RangeViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, viols := evalField(fc, tt.raw, []string{"name"})
			if tt.want == "" {
				assert.Empty(t, viols)
				return
			}
			require.NotEmpty(t, viols)
			assert.Equal(t, tt.want, viols[0].Kind)
			assert.Equal(t, []string{"name"}, viols[0].Path)
		})
	}
}

func TestEvalField_StringTooLongAndMismatched_ReportsBoth(t *testing.T) {
	fc := schema.String("name", schema.Pattern(`[a-z]+`), schema.MaxLen(3))

	_, viols := evalField(fc, "ABCDEF", nil)
	require.Len(t, viols, 2)
	assert.Equal(t, RangeViolation, viols[0].Kind)
	assert.Equal(t, PatternMismatch, viols[1].Kind)
}

func TestEvalField_IntBoundaries(t *testing.T) {
	fc := schema.Int("metric", schema.Range(1, 65535))

	for _, valid := range []int64{1, 65535, 100} {
		_, viols := evalField(fc, valid, nil)
		assert.Empty(t, viols, "value %d must pass", valid)
	}
	for _, invalid := range []int64{0, 65536} {
		_, viols := evalField(fc, invalid, nil)
		require.Len(t, viols, 1, "value %d must fail", invalid)
		assert.Equal(t, RangeViolation, viols[0].Kind)
	}
}

func TestEvalField_IntCoercion(t *testing.T) {
	fc := schema.Int("metric", schema.Range(0, 100))

	// encoding/json produces float64, yaml.v3 produces int.
	for _, raw := range []any{float64(50), int(50), int64(50), json.Number("50")} {
		value, viols := evalField(fc, raw, nil)
		require.Empty(t, viols, "%T must coerce", raw)
		assert.Equal(t, int64(50), value)
	}

	_, viols := evalField(fc, 50.5, nil)
	require.Len(t, viols, 1)
	assert.Equal(t, TypeMismatch, viols[0].Kind)
}

func TestEvalField_Enum(t *testing.T) {
	fc := schema.Enum("action", []string{"permit", "deny"})

	_, viols := evalField(fc, "permit", nil)
	assert.Empty(t, viols)

	// Case-sensitive.
	_, viols = evalField(fc, "Permit", nil)
	require.Len(t, viols, 1)
	assert.Equal(t, TypeMismatch, viols[0].Kind)
}

func TestEvalField_Bool(t *testing.T) {
	fc := schema.Bool("disabled")

	_, viols := evalField(fc, true, nil)
	assert.Empty(t, viols)

	_, viols = evalField(fc, "true", nil)
	require.Len(t, viols, 1)
	assert.Equal(t, TypeMismatch, viols[0].Kind)
}

func TestEvalField_ListElements(t *testing.T) {
	fc := schema.List("tags", schema.String("", schema.MaxLen(3)))

	_, viols := evalField(fc, []any{"ok", "toolong"}, []string{"tags"})
	require.Len(t, viols, 1)
	assert.Equal(t, RangeViolation, viols[0].Kind)
	assert.Equal(t, []string{"tags", "1"}, viols[0].Path)
}

func TestEvalField_DuplicateItems(t *testing.T) {
	fc := schema.List("tags", schema.String(""), schema.Unique())

	// "a" is individually valid; the duplicate check is independent.
	_, viols := evalField(fc, []any{"a", "a", "b"}, []string{"tags"})
	require.Len(t, viols, 1)
	assert.Equal(t, DuplicateItems, viols[0].Kind)
	assert.Equal(t, []string{"tags"}, viols[0].Path)
}

func TestEvalField_DuplicateItems_JSONNumbers(t *testing.T) {
	fc := schema.List("ports", schema.Int(""), schema.Unique())

	// encoding/json decodes integers as float64; coercion must not hide
	// the duplicate.
	_, viols := evalField(fc, []any{float64(80), float64(80), float64(443)}, []string{"ports"})
	require.Len(t, viols, 1)
	assert.Equal(t, DuplicateItems, viols[0].Kind)
	assert.Equal(t, []string{"ports"}, viols[0].Path)
}

func TestEvalField_DuplicateItems_UnhashableMalformedElement(t *testing.T) {
	fc := schema.List("tags", schema.String(""), schema.Unique())

	// The malformed element gets its TypeMismatch; the repeated "a" is
	// still a duplicate, and the map element must not blow up the scan.
	_, viols := evalField(fc, []any{"a", map[string]any{"x": 1}, "a"}, []string{"tags"})

	kinds := make(map[ViolationKind]int)
	for _, v := range viols {
		kinds[v.Kind]++
	}
	assert.Equal(t, 1, kinds[TypeMismatch])
	assert.Equal(t, 1, kinds[DuplicateItems])
}

func TestEvalField_ListScalarExpected(t *testing.T) {
	fc := schema.List("tags", schema.String(""))

	_, viols := evalField(fc, "not-a-list", nil)
	require.Len(t, viols, 1)
	assert.Equal(t, TypeMismatch, viols[0].Kind)
}
