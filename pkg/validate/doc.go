/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

// Package validate walks raw configuration mappings against node schemas
// and produces either a validated tree or a structured violation report.
//
// # Overview
//
// The validator applies field constraints and exclusivity groups
// depth-first across a nested input mapping. It aggregates every violation
// in one pass rather than stopping at the first, so a caller sees all
// problems in a single edit-revalidate cycle.
//
// # Usage
//
// Basic validation against the default catalog:
//
//	v := validate.New(catalog.Default())
//	tree, err := v.Validate(ctx, "nat-rule.create", payload)
//	if err != nil {
//	    var report *validate.Report
//	    if errors.As(err, &report) {
//	        for _, viol := range report.Violations {
//	            fmt.Printf("  %s: %s %s\n", viol.PathString(), viol.Kind, viol.Detail)
//	        }
//	    }
//	    return err
//	}
//
// # Violation Kinds
//
// MissingRequired, TypeMismatch, PatternMismatch, RangeViolation,
// DuplicateItems, UnknownField, and ExclusivityViolation. Violations carry a
// path into the input mapping so callers and tests assert on specific
// failures instead of parsing message text.
//
// # Presence Semantics
//
// Exclusivity groups count a member as present when its key exists in the
// input mapping, independent of whether the value itself validates. A
// malformed-but-present member surfaces its own field-level violation and
// still counts toward the group's cardinality, so both errors appear in the
// report. An empty object is present; marker sub-objects like discard: {}
// rely on this.
//
// # Concurrency
//
// A Validator holds only the read-only schema registry. Each Validate call
// owns its own input, tree, and report, so arbitrarily many validations may
// run concurrently without coordination.
package validate
