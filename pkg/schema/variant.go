/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package schema

// Variant name suffixes. A family "nat-rule" registers "nat-rule" (base),
// "nat-rule.create", "nat-rule.update", and "nat-rule.response".
const (
	VariantCreate   = "create"
	VariantUpdate   = "update"
	VariantResponse = "response"
)

const uuidPattern = `[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}`

// namePattern matches configuration object names across resource families.
const namePattern = `[0-9a-zA-Z._\- ]+`

func containerFields() []*FieldConstraint {
	return []*FieldConstraint{
		String("folder", Pattern(namePattern), MaxLen(64)),
		String("snippet", Pattern(namePattern), MaxLen(64)),
		String("device", Pattern(namePattern), MaxLen(64)),
	}
}

// CreateVariant derives the create schema from a base: the base fields plus
// the folder/snippet/device container fields under the shared container
// group, with extra keys forbidden. Additional required fields may be
// appended by the caller.
func CreateVariant(base *Node, extra ...*FieldConstraint) *Node {
	c := base.Clone()
	c.Name = base.Name + "." + VariantCreate
	c.Fields = append(c.Fields, containerFields()...)
	c.Fields = append(c.Fields, extra...)
	c.Groups = append(c.Groups, ContainerGroup())
	c.ExtraPolicy = ExtraForbid
	c.reindex()
	return c
}

// UpdateVariant derives the update schema from a base: the base fields plus
// a required id.
func UpdateVariant(base *Node, extra ...*FieldConstraint) *Node {
	u := base.Clone()
	u.Name = base.Name + "." + VariantUpdate
	u.Fields = append(u.Fields, String("id", Required(), Pattern(uuidPattern)))
	u.Fields = append(u.Fields, extra...)
	u.ExtraPolicy = ExtraForbid
	u.reindex()
	return u
}

// ResponseVariant derives the response schema from a base: the base fields
// plus id and the container fields (all optional), with unknown keys
// ignored for forward compatibility with additive API changes.
func ResponseVariant(base *Node) *Node {
	r := base.Clone()
	r.Name = base.Name + "." + VariantResponse
	r.Fields = append(r.Fields, String("id", Pattern(uuidPattern)))
	r.Fields = append(r.Fields, containerFields()...)
	r.ExtraPolicy = ExtraIgnore
	r.reindex()
	return r
}
