/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package schema

// Cardinality restricts how many members of an exclusivity group may be
// present at once.
type Cardinality string

const (
	// ExactlyOneOf requires exactly one member present.
	ExactlyOneOf Cardinality = "exactly_one"

	// AtMostOneOf allows zero or one member present.
	AtMostOneOf Cardinality = "at_most_one"

	// AtLeastOneOf forbids only the all-absent case.
	AtLeastOneOf Cardinality = "at_least_one"
)

// Group is a cardinality constraint over a set of sibling fields. Presence
// is about key existence in the input mapping, independent of whether the
// value itself validates.
type Group struct {
	Members     []string    `json:"members" yaml:"members"`
	Cardinality Cardinality `json:"cardinality" yaml:"cardinality"`
}

// ExactlyOne declares a group where exactly one member must be present.
func ExactlyOne(members ...string) Group {
	return Group{Members: members, Cardinality: ExactlyOneOf}
}

// AtMostOne declares a group where at most one member may be present.
func AtMostOne(members ...string) Group {
	return Group{Members: members, Cardinality: AtMostOneOf}
}

// AtLeastOne declares a group where at least one member must be present.
func AtLeastOne(members ...string) Group {
	return Group{Members: members, Cardinality: AtLeastOneOf}
}

// ContainerMembers are the fields of the shared container rule applied to
// every create variant.
var ContainerMembers = []string{"folder", "snippet", "device"}

// ContainerGroup returns the shared "exactly one of folder/snippet/device"
// rule. It is a single definition reused across all create variants rather
// than being redeclared per schema.
func ContainerGroup() Group {
	return ExactlyOne(ContainerMembers...)
}
