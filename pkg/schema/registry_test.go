package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/stratacloud/netschema/pkg/errors"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	reg := NewRegistry()
	require.True(t, reg.IsEmpty())

	n := NewNode("address", WithFields(String("name", Required())))
	require.NoError(t, reg.Register(n))

	got, err := reg.Resolve("address")
	require.NoError(t, err)
	assert.Same(t, n, got)
	assert.Equal(t, 1, reg.Count())
}

func TestRegistry_DuplicateNameConflicts(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(NewNode("address")))

	err := reg.Register(NewNode("address"))
	require.Error(t, err)
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeConflict))
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Resolve("no-such-schema")
	require.Error(t, err)
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeNotFound))
}

func TestRegistry_RejectsInvalidSchema(t *testing.T) {
	reg := NewRegistry()
	bad := NewNode("bad", WithGroup(ExactlyOne("ghost")))

	err := reg.Register(bad)
	require.Error(t, err)
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeInvalidRequest))
	assert.Equal(t, 0, reg.Count())
}

func TestRegistry_ListIsSorted(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(NewNode("zone"), NewNode("address"), NewNode("nat-rule"))

	assert.Equal(t, []string{"address", "nat-rule", "zone"}, reg.List())
}

func TestVariants_DeriveFromBase(t *testing.T) {
	base := NewNode("address",
		WithFields(
			String("name", Required(), MaxLen(63)),
			String("description"),
		),
	)

	create := CreateVariant(base)
	assert.Equal(t, "address.create", create.Name)
	assert.Equal(t, ExtraForbid, create.ExtraPolicy)
	for _, member := range ContainerMembers {
		_, ok := create.Field(member)
		assert.True(t, ok, "create variant must declare %s", member)
	}
	require.NotEmpty(t, create.Groups)
	last := create.Groups[len(create.Groups)-1]
	assert.Equal(t, ExactlyOneOf, last.Cardinality)
	assert.Equal(t, ContainerMembers, last.Members)

	update := UpdateVariant(base)
	assert.Equal(t, "address.update", update.Name)
	id, ok := update.Field("id")
	require.True(t, ok)
	assert.True(t, id.Required)

	resp := ResponseVariant(base)
	assert.Equal(t, "address.response", resp.Name)
	assert.Equal(t, ExtraIgnore, resp.ExtraPolicy)
	id, ok = resp.Field("id")
	require.True(t, ok)
	assert.False(t, id.Required)

	// Deriving variants must not leak fields back into the base.
	_, ok = base.Field("id")
	assert.False(t, ok)
	_, ok = base.Field("folder")
	assert.False(t, ok)
}
