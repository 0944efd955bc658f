package serializer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratacloud/netschema/pkg/schema/catalog"
	"github.com/stratacloud/netschema/pkg/validate"
)

func validateInput(t *testing.T, schemaName string, input map[string]any) *validate.Tree {
	t.Helper()
	v := validate.New(catalog.Default())
	tree, err := v.Validate(context.Background(), schemaName, input)
	require.NoError(t, err)
	return tree
}

func TestCanonical_EmitsExternalAliases(t *testing.T) {
	tree := validateInput(t, "nat-rule", map[string]any{
		"name":  "r1",
		"from_": []any{"trust"},
		"to_":   []any{"untrust"},
	})

	out := Canonical(tree, true)
	assert.Equal(t, []any{"trust"}, out["from"])
	assert.Equal(t, []any{"untrust"}, out["to"])
	_, hasCanonical := out["from_"]
	assert.False(t, hasCanonical, "canonical spelling must not leak to the wire")
}

func TestCanonical_HyphenatedAlias(t *testing.T) {
	tree := validateInput(t, "dns-server-profile", map[string]any{
		"name":           "p1",
		"domain_servers": []any{"ns1.example.com"},
	})

	out := Canonical(tree, true)
	assert.Contains(t, out, "domain-servers")
	assert.NotContains(t, out, "domain_servers")
}

func TestCanonical_ExplicitOnlySkipsDefaults(t *testing.T) {
	tree := validateInput(t, "nat-rule", map[string]any{"name": "r1"})

	explicit := Canonical(tree, true)
	assert.Equal(t, map[string]any{"name": "r1"}, explicit)

	// Without explicit-only, defaulted fields are emitted.
	full := Canonical(tree, false)
	assert.Equal(t, "ipv4", full["nat_type"])
	assert.Equal(t, false, full["disabled"])
}

func TestCanonical_ExplicitDefaultValueIsEmitted(t *testing.T) {
	// A field set to its default value was still explicitly set and must
	// survive explicit-only emission.
	tree := validateInput(t, "nat-rule", map[string]any{
		"name":     "r1",
		"disabled": false,
	})

	out := Canonical(tree, true)
	assert.Equal(t, false, out["disabled"])
}

func TestCanonical_NestedTreesRecurse(t *testing.T) {
	tree := validateInput(t, "nat-rule", map[string]any{
		"name": "r1",
		"source_translation": map[string]any{
			"static_ip": map[string]any{"translated_address": "1.2.3.4"},
		},
	})

	out := Canonical(tree, true)
	st, ok := out["source_translation"].(map[string]any)
	require.True(t, ok)
	static, ok := st["static_ip"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1.2.3.4", static["translated_address"])
}

func TestCanonical_MarkerEmitsEmptyObject(t *testing.T) {
	tree := validateInput(t, "dns-server-profile", map[string]any{
		"name":    "p1",
		"inherit": map[string]any{},
	})

	out := Canonical(tree, true)
	marker, ok := out["inherit"].(map[string]any)
	require.True(t, ok)
	assert.Empty(t, marker)
}

// Re-validating the serializer's non-explicit output yields an equivalent
// tree: serialize after validate is idempotent up to default-filling.
func TestCanonical_RoundTrip(t *testing.T) {
	inputs := []struct {
		schema string
		input  map[string]any
	}{
		{"nat-rule", map[string]any{
			"name":  "r1",
			"from_": []any{"trust"},
			"source_translation": map[string]any{
				"dynamic_ip": map[string]any{"translated_address": []any{"1.2.3.5"}},
			},
		}},
		{"address", map[string]any{
			"name":       "a1",
			"ip_netmask": "10.0.0.0/24",
			"tag":        []any{"t1", "t2"},
		}},
		{"logical-router", map[string]any{
			"name": "lr1",
			"vrf": []any{
				map[string]any{
					"name":      "default",
					"interface": []any{"eth0"},
					"bgp": map[string]any{
						"enable":   true,
						"local_as": 65001,
					},
				},
			},
		}},
	}

	v := validate.New(catalog.Default())
	for _, tc := range inputs {
		t.Run(tc.schema, func(t *testing.T) {
			first, err := v.Validate(context.Background(), tc.schema, tc.input)
			require.NoError(t, err)

			emitted := Canonical(first, false)
			second, err := v.Validate(context.Background(), tc.schema, emitted)
			require.NoError(t, err, "canonical output must re-validate")

			assert.Equal(t, Canonical(first, false), Canonical(second, false))
		})
	}
}
