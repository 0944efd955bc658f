package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratacloud/netschema/pkg/schema"
)

func TestDefault_IsSharedAndPopulated(t *testing.T) {
	reg := Default()
	require.NotNil(t, reg)
	assert.Same(t, reg, Default(), "Default must return the cached registry")
	assert.False(t, reg.IsEmpty())
}

func TestBuild_EveryFamilyHasAllVariants(t *testing.T) {
	reg := Default()

	families := []string{
		"address",
		"nat-rule",
		"bgp-route-map",
		"bgp-redistribution",
		"logical-router",
		"ike-gateway",
		"zone-protection-profile",
		"dns-server-profile",
	}

	for _, family := range families {
		for _, name := range []string{
			family,
			family + ".create",
			family + ".update",
			family + ".response",
		} {
			_, err := reg.Resolve(name)
			assert.NoError(t, err, "missing schema %s", name)
		}
	}
}

// Every nested reference must resolve and the schema graph must be acyclic,
// which bounds validation depth.
func TestBuild_NestedReferencesResolveAcyclically(t *testing.T) {
	reg := Default()

	var visit func(t *testing.T, name string, trail []string)
	visit = func(t *testing.T, name string, trail []string) {
		for _, seen := range trail {
			require.NotEqual(t, seen, name,
				"cycle through %s", strings.Join(append(trail, name), " -> "))
		}
		node, err := reg.Resolve(name)
		require.NoError(t, err, "dangling reference to %s from %v", name, trail)

		for _, f := range node.Fields {
			ref := ""
			switch {
			case f.Kind == schema.KindNested:
				ref = f.Schema
			case f.Kind == schema.KindList && f.Elem.Kind == schema.KindNested:
				ref = f.Elem.Schema
			}
			if ref != "" {
				visit(t, ref, append(trail, name))
			}
		}
	}

	for _, name := range reg.List() {
		visit(t, name, nil)
	}
}

func TestBuild_CreateVariantsCarryContainerRule(t *testing.T) {
	reg := Default()

	for _, name := range reg.List() {
		if !strings.HasSuffix(name, "."+schema.VariantCreate) {
			continue
		}
		node, err := reg.Resolve(name)
		require.NoError(t, err)

		found := false
		for _, g := range node.Groups {
			if g.Cardinality == schema.ExactlyOneOf &&
				assert.ObjectsAreEqual(schema.ContainerMembers, g.Members) {
				found = true
			}
		}
		assert.True(t, found, "%s lacks the container rule", name)
	}
}

func TestBuild_ResponseVariantsIgnoreUnknownKeys(t *testing.T) {
	reg := Default()

	for _, name := range reg.List() {
		node, err := reg.Resolve(name)
		require.NoError(t, err)

		if strings.HasSuffix(name, "."+schema.VariantResponse) {
			assert.Equal(t, schema.ExtraIgnore, node.ExtraPolicy, name)
		} else {
			assert.Equal(t, schema.ExtraForbid, node.ExtraPolicy, name)
		}
	}
}

func TestBuild_MarkerSchemaIsEmpty(t *testing.T) {
	node, err := Default().Resolve(MarkerSchema)
	require.NoError(t, err)
	assert.Empty(t, node.Fields)
	assert.Empty(t, node.Groups)
}

func TestBuild_AliasedFieldsDeclared(t *testing.T) {
	reg := Default()

	natRule, err := reg.Resolve("nat-rule")
	require.NoError(t, err)
	from, ok := natRule.Field("from_")
	require.True(t, ok)
	assert.Equal(t, "from", from.WireName())

	set, err := reg.Resolve("bgp-route-map.set")
	require.NoError(t, err)
	as, ok := set.Field("as_")
	require.True(t, ok)
	assert.Equal(t, "as", as.WireName())

	dns, err := reg.Resolve("dns-server-profile")
	require.NoError(t, err)
	servers, ok := dns.Field("domain_servers")
	require.True(t, ok)
	assert.Equal(t, "domain-servers", servers.WireName())
}
