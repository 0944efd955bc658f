/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"github.com/stratacloud/netschema/pkg/schema"
)

// Tree is an immutable instantiation of a node schema: a mapping from
// canonical field name to a coerced primitive, a nested *Tree, or a list.
// Only a fully successful validation run constructs one; a failed run
// yields a report and no tree.
type Tree struct {
	node    *schema.Node
	values  map[string]any
	present map[string]struct{}
}

func newTree(node *schema.Node) *Tree {
	return &Tree{
		node:    node,
		values:  make(map[string]any),
		present: make(map[string]struct{}),
	}
}

func (t *Tree) set(name string, value any, explicit bool) {
	t.values[name] = value
	if explicit {
		t.present[name] = struct{}{}
	}
}

// Node returns the schema this tree was validated against.
func (t *Tree) Node() *schema.Node {
	return t.node
}

// Get returns the value for a canonical field name. Defaulted fields are
// included; absent optional fields without a default are not.
func (t *Tree) Get(name string) (any, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Present reports whether the field was explicitly set in the original
// input, as opposed to filled from its default.
func (t *Tree) Present(name string) bool {
	_, ok := t.present[name]
	return ok
}

// Len returns the number of populated fields.
func (t *Tree) Len() int {
	return len(t.values)
}
