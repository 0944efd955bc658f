/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package schema

import "regexp"

// FieldKind identifies the value type a field constraint accepts.
type FieldKind string

const (
	KindString FieldKind = "string"
	KindInt    FieldKind = "int"
	KindBool   FieldKind = "bool"
	KindEnum   FieldKind = "enum"
	KindList   FieldKind = "list"
	KindNested FieldKind = "nested"
)

// FieldConstraint is a single leaf-level rule: the field's kind, whether it
// is required, its default, and the kind-specific checks. Constraints are
// immutable once the schema graph is constructed.
type FieldConstraint struct {
	// Name is the canonical attribute name (e.g. "from_").
	Name string

	// External is the wire name when it differs from Name (e.g. "from").
	External string

	Kind     FieldKind
	Required bool

	// Default is substituted when an optional field is absent. A required
	// field must not carry a default.
	Default any

	// Pattern is an anchored full-match pattern. String kind only.
	Pattern *regexp.Regexp

	// Min and Max are inclusive bounds. Int kind only.
	Min *int64
	Max *int64

	// MaxLength bounds string length in bytes. String kind only.
	MaxLength *int

	// AllowedValues is the case-sensitive value set. Enum kind only.
	AllowedValues []string

	// Elem is the element constraint. List kind only.
	Elem *FieldConstraint

	// UniqueItems rejects duplicate list elements. List kind only.
	UniqueItems bool

	// Schema names the nested node schema in the registry. Nested kind only.
	Schema string
}

// WireName returns the name emitted on output: the external alias when one
// is declared, otherwise the canonical name.
func (f *FieldConstraint) WireName() string {
	if f.External != "" {
		return f.External
	}
	return f.Name
}

// Clone returns a deep copy of the constraint. The compiled pattern is
// shared; it is immutable.
func (f *FieldConstraint) Clone() *FieldConstraint {
	c := *f
	if f.Min != nil {
		v := *f.Min
		c.Min = &v
	}
	if f.Max != nil {
		v := *f.Max
		c.Max = &v
	}
	if f.MaxLength != nil {
		v := *f.MaxLength
		c.MaxLength = &v
	}
	if f.AllowedValues != nil {
		c.AllowedValues = append([]string(nil), f.AllowedValues...)
	}
	if f.Elem != nil {
		c.Elem = f.Elem.Clone()
	}
	return &c
}

// FieldOption is a functional option for configuring field constraints.
type FieldOption func(*FieldConstraint)

// Required marks the field as required.
func Required() FieldOption {
	return func(f *FieldConstraint) {
		f.Required = true
	}
}

// Default sets the value substituted when the field is absent.
func Default(v any) FieldOption {
	return func(f *FieldConstraint) {
		f.Default = v
	}
}

// Pattern sets an anchored full-match pattern. The expression is compiled
// with ^...$ anchors added when missing; an invalid expression panics, which
// is acceptable because all patterns live in the static catalog.
func Pattern(expr string) FieldOption {
	return func(f *FieldConstraint) {
		f.Pattern = regexp.MustCompile(anchor(expr))
	}
}

// Range sets inclusive integer bounds.
func Range(min, max int64) FieldOption {
	return func(f *FieldConstraint) {
		f.Min = &min
		f.Max = &max
	}
}

// MaxLen sets the maximum string length.
func MaxLen(n int) FieldOption {
	return func(f *FieldConstraint) {
		f.MaxLength = &n
	}
}

// External sets the wire name for fields whose canonical name collides with
// a reserved word or uses a different separator (from_ -> from,
// domain_servers -> domain-servers).
func External(name string) FieldOption {
	return func(f *FieldConstraint) {
		f.External = name
	}
}

// Unique rejects duplicate elements in a list field.
func Unique() FieldOption {
	return func(f *FieldConstraint) {
		f.UniqueItems = true
	}
}

// String declares a string field.
func String(name string, opts ...FieldOption) *FieldConstraint {
	return build(&FieldConstraint{Name: name, Kind: KindString}, opts)
}

// Int declares an integer field.
func Int(name string, opts ...FieldOption) *FieldConstraint {
	return build(&FieldConstraint{Name: name, Kind: KindInt}, opts)
}

// Bool declares a boolean field.
func Bool(name string, opts ...FieldOption) *FieldConstraint {
	return build(&FieldConstraint{Name: name, Kind: KindBool}, opts)
}

// Enum declares an enum field over a case-sensitive value set.
func Enum(name string, values []string, opts ...FieldOption) *FieldConstraint {
	return build(&FieldConstraint{Name: name, Kind: KindEnum, AllowedValues: values}, opts)
}

// List declares a list field with an element constraint. The element
// constraint's name is ignored; its path component is the element index.
func List(name string, elem *FieldConstraint, opts ...FieldOption) *FieldConstraint {
	return build(&FieldConstraint{Name: name, Kind: KindList, Elem: elem}, opts)
}

// Nested declares a field holding a nested object validated against the
// named node schema.
func Nested(name, schemaName string, opts ...FieldOption) *FieldConstraint {
	return build(&FieldConstraint{Name: name, Kind: KindNested, Schema: schemaName}, opts)
}

// NestedList declares a field holding a list of nested objects.
func NestedList(name, schemaName string, opts ...FieldOption) *FieldConstraint {
	elem := &FieldConstraint{Kind: KindNested, Schema: schemaName}
	return build(&FieldConstraint{Name: name, Kind: KindList, Elem: elem}, opts)
}

func build(f *FieldConstraint, opts []FieldOption) *FieldConstraint {
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func anchor(expr string) string {
	if len(expr) == 0 || expr[0] != '^' {
		expr = "^" + expr
	}
	if expr[len(expr)-1] != '$' {
		expr += "$"
	}
	return expr
}
