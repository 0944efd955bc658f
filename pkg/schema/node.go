/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	cerrors "github.com/stratacloud/netschema/pkg/errors"
)

// ExtraPolicy controls how unrecognized input keys are treated.
type ExtraPolicy string

const (
	// ExtraForbid rejects unknown input keys with an UnknownField violation.
	ExtraForbid ExtraPolicy = "forbid"

	// ExtraIgnore silently drops unknown input keys. Used by response
	// variants so additive API changes do not break deserialization.
	ExtraIgnore ExtraPolicy = "ignore"
)

// Node is a named collection of field constraints plus the exclusivity
// groups and extra-key policy that apply to one JSON object shape.
type Node struct {
	Name        string
	ExtraPolicy ExtraPolicy
	Fields      []*FieldConstraint
	Groups      []Group

	byName map[string]*FieldConstraint
	byWire map[string]*FieldConstraint
}

// NodeOption is a functional option for configuring Node instances.
type NodeOption func(*Node)

// WithFields appends field constraints in declaration order.
func WithFields(fields ...*FieldConstraint) NodeOption {
	return func(n *Node) {
		n.Fields = append(n.Fields, fields...)
	}
}

// WithGroup appends an exclusivity group.
func WithGroup(g Group) NodeOption {
	return func(n *Node) {
		n.Groups = append(n.Groups, g)
	}
}

// WithPolicy sets the extra-key policy.
func WithPolicy(p ExtraPolicy) NodeOption {
	return func(n *Node) {
		n.ExtraPolicy = p
	}
}

// NewNode creates a node schema with the provided options. The default
// extra-key policy is forbid; response variants switch it to ignore.
func NewNode(name string, opts ...NodeOption) *Node {
	n := &Node{
		Name:        name,
		ExtraPolicy: ExtraForbid,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.reindex()
	return n
}

func (n *Node) reindex() {
	n.byName = make(map[string]*FieldConstraint, len(n.Fields))
	n.byWire = make(map[string]*FieldConstraint, len(n.Fields))
	for _, f := range n.Fields {
		n.byName[f.Name] = f
		n.byWire[f.WireName()] = f
	}
}

// Field resolves a field constraint by canonical name.
func (n *Node) Field(name string) (*FieldConstraint, bool) {
	f, ok := n.byName[name]
	return f, ok
}

// Lookup resolves an input key, accepting either the canonical name or the
// external wire name. Both spellings resolve to the same constraint.
func (n *Node) Lookup(key string) (*FieldConstraint, bool) {
	if f, ok := n.byName[key]; ok {
		return f, true
	}
	f, ok := n.byWire[key]
	return f, ok
}

// FieldNames returns all accepted input spellings, canonical first. Used
// for unknown-field suggestions.
func (n *Node) FieldNames() []string {
	names := make([]string, 0, len(n.Fields)*2)
	for _, f := range n.Fields {
		names = append(names, f.Name)
		if f.External != "" && f.External != f.Name {
			names = append(names, f.External)
		}
	}
	return names
}

// Clone returns a deep copy with the same name. Variant derivation clones
// the base and then mutates the copy before registration.
func (n *Node) Clone() *Node {
	c := &Node{
		Name:        n.Name,
		ExtraPolicy: n.ExtraPolicy,
		Fields:      make([]*FieldConstraint, 0, len(n.Fields)),
		Groups:      make([]Group, 0, len(n.Groups)),
	}
	for _, f := range n.Fields {
		c.Fields = append(c.Fields, f.Clone())
	}
	for _, g := range n.Groups {
		c.Groups = append(c.Groups, Group{
			Members:     append([]string(nil), g.Members...),
			Cardinality: g.Cardinality,
		})
	}
	c.reindex()
	return c
}

// Check verifies the node's structural invariants: every group member must
// be a declared field, and a required field must not carry a default.
// Registry.Register calls this before accepting a schema.
func (n *Node) Check() error {
	if n.Name == "" {
		return cerrors.New(cerrors.ErrCodeInvalidRequest, "node schema must be named")
	}
	for _, f := range n.Fields {
		if f.Required && f.Default != nil {
			return cerrors.Newf(cerrors.ErrCodeInvalidRequest,
				"schema %q field %q: required field must not have a default", n.Name, f.Name)
		}
		if f.Kind == KindList && f.Elem == nil {
			return cerrors.Newf(cerrors.ErrCodeInvalidRequest,
				"schema %q field %q: list field must declare an element constraint", n.Name, f.Name)
		}
		if f.Kind == KindNested && f.Schema == "" {
			return cerrors.Newf(cerrors.ErrCodeInvalidRequest,
				"schema %q field %q: nested field must reference a schema", n.Name, f.Name)
		}
	}
	for _, g := range n.Groups {
		for _, m := range g.Members {
			if _, ok := n.byName[m]; !ok {
				return cerrors.Newf(cerrors.ErrCodeInvalidRequest,
					"schema %q: exclusivity group references undeclared field %q", n.Name, m)
			}
		}
	}
	return nil
}
