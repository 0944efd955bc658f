/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/stratacloud/netschema/pkg/header"
)

const (
	// APIVersion is the API version for validation reports.
	APIVersion = "netschema.stratacloud.io/v1"

	// Kind is the kind for validation reports.
	Kind = "ValidationReport"
)

// ViolationKind classifies a single validation failure.
type ViolationKind string

const (
	MissingRequired      ViolationKind = "MissingRequired"
	TypeMismatch         ViolationKind = "TypeMismatch"
	PatternMismatch      ViolationKind = "PatternMismatch"
	RangeViolation       ViolationKind = "RangeViolation"
	DuplicateItems       ViolationKind = "DuplicateItems"
	UnknownField         ViolationKind = "UnknownField"
	ExclusivityViolation ViolationKind = "ExclusivityViolation"
)

// Violation is one validation failure, qualified by its path into the
// input mapping.
type Violation struct {
	Path   []string      `json:"path" yaml:"path"`
	Kind   ViolationKind `json:"kind" yaml:"kind"`
	Detail string        `json:"detail" yaml:"detail"`

	// Members lists the present group members for exclusivity violations.
	Members []string `json:"members,omitempty" yaml:"members,omitempty"`
}

// PathString renders the path in dotted form, or "." for the root.
func (v Violation) PathString() string {
	if len(v.Path) == 0 {
		return "."
	}
	return strings.Join(v.Path, ".")
}

// Summary aggregates per-kind violation counts for a report.
type Summary struct {
	Total    int                   `json:"total" yaml:"total"`
	ByKind   map[ViolationKind]int `json:"byKind,omitempty" yaml:"byKind,omitempty"`
	Duration time.Duration         `json:"duration" yaml:"duration"`
}

// Report is the ordered list of violations from one validation run. It
// implements error; a failed Validate call returns the report directly so
// callers can assert on specific violations.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Schema     string      `json:"schema" yaml:"schema"`
	Violations []Violation `json:"violations" yaml:"violations"`
	Summary    Summary     `json:"summary" yaml:"summary"`
}

// NewReport creates an empty report for the named schema with a stamped
// identity header.
func NewReport(schemaName string) *Report {
	r := &Report{Schema: schemaName}
	r.Header.Set(Kind)
	return r
}

// Add appends violations and updates the summary counts.
func (r *Report) Add(violations ...Violation) {
	for _, v := range violations {
		if r.Summary.ByKind == nil {
			r.Summary.ByKind = make(map[ViolationKind]int)
		}
		r.Summary.ByKind[v.Kind]++
		r.Summary.Total++
		r.Violations = append(r.Violations, v)
	}
}

// ByPath returns the violations recorded at the exact dotted path.
func (r *Report) ByPath(dotted string) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.PathString() == dotted {
			out = append(out, v)
		}
	}
	return out
}

// Error implements the error interface.
func (r *Report) Error() string {
	if len(r.Violations) == 0 {
		return fmt.Sprintf("validation of %q produced no violations", r.Schema)
	}
	first := r.Violations[0]
	return fmt.Sprintf("schema %q: %d violation(s), first at %s: %s: %s",
		r.Schema, len(r.Violations), first.PathString(), first.Kind, first.Detail)
}
