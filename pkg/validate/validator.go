/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/agnivade/levenshtein"

	cerrors "github.com/stratacloud/netschema/pkg/errors"
	"github.com/stratacloud/netschema/pkg/schema"
)

// Validator walks raw mappings against node schemas from a registry.
type Validator struct {
	// Version is the validator version (typically the CLI version),
	// stamped into report metadata.
	Version string

	registry *schema.Registry
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// New creates a new Validator over the given schema registry.
func New(registry *schema.Registry, opts ...Option) *Validator {
	v := &Validator{registry: registry}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate walks the input mapping against the named schema, applying
// field constraints and exclusivity groups depth-first and aggregating
// every violation in one pass.
//
// On success it returns the validated tree. On validation failure it
// returns a *Report as the error. Resolution failures (unknown schema,
// dangling nested reference) are structured errors, not reports.
func (v *Validator) Validate(ctx context.Context, schemaName string, input map[string]any) (*Tree, error) {
	start := time.Now()

	node, err := v.registry.Resolve(schemaName)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, cerrors.New(cerrors.ErrCodeInvalidRequest, "input mapping cannot be nil")
	}

	tree, violations, err := v.walk(ctx, node, input, nil, false)
	if err != nil {
		validationTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	validationDuration.Observe(time.Since(start).Seconds())

	if len(violations) > 0 {
		report := NewReport(schemaName)
		if v.Version != "" {
			report.Metadata["validator-version"] = v.Version
		}
		report.Add(violations...)
		report.Summary.Duration = time.Since(start)

		validationTotal.WithLabelValues("invalid").Inc()
		for _, viol := range violations {
			violationTotal.WithLabelValues(string(viol.Kind)).Inc()
		}

		slog.Debug("validation failed",
			"schema", schemaName,
			"violations", len(violations),
			"duration", time.Since(start))
		return nil, report
	}

	validationTotal.WithLabelValues("valid").Inc()
	slog.Debug("validation passed", "schema", schemaName, "duration", time.Since(start))
	return tree, nil
}

type rawEntry struct {
	key   string // spelling used in the input
	value any
}

// walk validates one node of the input tree. The returned tree is only
// meaningful when the violation slice, including descendants, is empty.
//
// lenient carries the ignore policy down from the variant being validated:
// a response schema tolerates additive API fields at every nesting depth,
// even though its nested sub-schemas are shared with forbid variants.
func (v *Validator) walk(ctx context.Context, node *schema.Node, input map[string]any, path []string, lenient bool) (*Tree, []Violation, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	lenient = lenient || node.ExtraPolicy == schema.ExtraIgnore

	var viols []Violation
	tree := newTree(node)

	// Resolve input keys to canonical fields, accepting either spelling.
	raw := make(map[string]rawEntry, len(input))
	for _, key := range sortedKeys(input) {
		fc, ok := node.Lookup(key)
		if !ok {
			if !lenient {
				viols = append(viols, unknownField(node, key, path))
			}
			continue
		}
		if prev, dup := raw[fc.Name]; dup {
			viols = append(viols, Violation{
				Path:   pathWith(path, key),
				Kind:   UnknownField,
				Detail: fmt.Sprintf("field %q already given as %q", fc.Name, prev.key),
			})
			continue
		}
		raw[fc.Name] = rawEntry{key: key, value: input[key]}
	}

	for _, fc := range node.Fields {
		entry, present := raw[fc.Name]
		fpath := pathWith(path, fc.Name)

		if !present {
			if fc.Required {
				viols = append(viols, Violation{
					Path:   fpath,
					Kind:   MissingRequired,
					Detail: fmt.Sprintf("required field %q is missing", fc.Name),
				})
			} else if fc.Default != nil {
				tree.set(fc.Name, fc.Default, false)
			}
			continue
		}

		value, fieldViols, err := v.evalValue(ctx, fc, entry.value, fpath, lenient)
		if err != nil {
			return nil, nil, err
		}
		viols = append(viols, fieldViols...)
		if len(fieldViols) == 0 {
			tree.set(fc.Name, value, true)
		}
	}

	// Groups run last; presence is key existence, not value validity.
	isPresent := func(name string) bool {
		_, ok := raw[name]
		return ok
	}
	for _, g := range node.Groups {
		if viol := evalGroup(g, isPresent, path); viol != nil {
			viols = append(viols, *viol)
		}
	}

	return tree, viols, nil
}

// evalValue dispatches between leaf evaluation and nested recursion,
// including lists of nested objects.
func (v *Validator) evalValue(ctx context.Context, fc *schema.FieldConstraint, raw any, path []string, lenient bool) (any, []Violation, error) {
	switch {
	case fc.Kind == schema.KindNested:
		return v.evalNested(ctx, fc.Schema, raw, path, lenient)

	case fc.Kind == schema.KindList && fc.Elem.Kind == schema.KindNested:
		arr, ok := raw.([]any)
		if !ok {
			return nil, mismatch(path, "list", raw), nil
		}
		var viols []Violation
		trees := make([]*Tree, 0, len(arr))
		for i, elem := range arr {
			sub, elemViols, err := v.evalNested(ctx, fc.Elem.Schema, elem, pathWith(path, fmt.Sprintf("%d", i)), lenient)
			if err != nil {
				return nil, nil, err
			}
			viols = append(viols, elemViols...)
			if t, ok := sub.(*Tree); ok {
				trees = append(trees, t)
			}
		}
		return trees, viols, nil

	default:
		value, viols := evalField(fc, raw, path)
		return value, viols, nil
	}
}

func (v *Validator) evalNested(ctx context.Context, schemaName string, raw any, path []string, lenient bool) (any, []Violation, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, mismatch(path, "object", raw), nil
	}

	child, err := v.registry.Resolve(schemaName)
	if err != nil {
		// A dangling reference is a catalog defect, not an input problem.
		return nil, nil, cerrors.Wrap(cerrors.ErrCodeInternal,
			fmt.Sprintf("nested schema %q unresolved at %v", schemaName, path), err)
	}
	return v.walk(ctx, child, obj, path, lenient)
}

func unknownField(node *schema.Node, key string, path []string) Violation {
	detail := fmt.Sprintf("unknown field %q", key)
	if hint := nearestField(node, key); hint != "" {
		detail = fmt.Sprintf("%s (did you mean %q?)", detail, hint)
	}
	return Violation{
		Path:   pathWith(path, key),
		Kind:   UnknownField,
		Detail: detail,
	}
}

// nearestField returns the declared name closest to key, or "" when even
// the best match is further than half the key's length and would read as
// noise rather than a typo hint.
func nearestField(node *schema.Node, key string) string {
	best := ""
	bestDist := len(key)/2 + 1
	for _, name := range node.FieldNames() {
		if d := levenshtein.ComputeDistance(key, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
