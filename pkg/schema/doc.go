/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

// Package schema defines the static description of configuration object
// shapes: field constraints, exclusivity groups, node schemas, and the
// registry that holds them.
//
// # Overview
//
// Every resource family in the configuration API (NAT rules, BGP route maps,
// logical routers, ...) is described by a set of Node schemas. A Node names
// an ordered collection of field constraints, the exclusivity groups that
// restrict which sibling fields may appear together, and the policy applied
// to unrecognized input keys.
//
// Schemas are declarative and immutable once registered. The Registry is
// populated once at process start (see pkg/schema/catalog) and is read-only
// afterward, so it may be shared across concurrent validations without
// locking on the hot path.
//
// # Variants
//
// Each resource family registers up to four variants derived from a single
// base definition:
//
//	base      the field set shared by all operations
//	create    base + the container group (exactly one of folder/snippet/device)
//	update    base + a required id
//	response  base + id, with unknown input keys ignored rather than rejected
//
// Deriving variants from the base avoids duplicating ~90% of the field
// definitions per family.
//
// # Field constraints
//
// A field constraint describes one leaf rule: its kind (string, int, bool,
// enum, list, nested), whether it is required, its default, and the
// kind-specific checks (anchored pattern and max length for strings,
// inclusive [min, max] for ints, allowed values for enums, element
// constraint and unique-items for lists).
//
// Fields whose canonical name differs from the wire name carry an external
// alias (e.g. from_ -> from, as_ -> as, domain_servers -> domain-servers).
// Both spellings are accepted on input; only the external name is emitted
// on output.
package schema
