/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stratacloud/netschema/pkg/schema"
)

// evalField applies one non-nested field constraint to one raw value.
// It returns the coerced value and any violations; it has no side effects.
// Nested recursion lives in the validator, which owns registry access.
func evalField(fc *schema.FieldConstraint, raw any, path []string) (any, []Violation) {
	switch fc.Kind {
	case schema.KindString:
		return evalString(fc, raw, path)
	case schema.KindInt:
		return evalInt(fc, raw, path)
	case schema.KindBool:
		return evalBool(raw, path)
	case schema.KindEnum:
		return evalEnum(fc, raw, path)
	case schema.KindList:
		return evalList(fc, raw, path)
	default:
		return nil, []Violation{{
			Path:   path,
			Kind:   TypeMismatch,
			Detail: fmt.Sprintf("unsupported field kind %q", fc.Kind),
		}}
	}
}

func evalString(fc *schema.FieldConstraint, raw any, path []string) (any, []Violation) {
	s, ok := raw.(string)
	if !ok {
		return nil, mismatch(path, "string", raw)
	}

	var viols []Violation
	if fc.MaxLength != nil && len(s) > *fc.MaxLength {
		viols = append(viols, Violation{
			Path:   path,
			Kind:   RangeViolation,
			Detail: fmt.Sprintf("length %d exceeds max_length %d", len(s), *fc.MaxLength),
		})
	}
	if fc.Pattern != nil && !fc.Pattern.MatchString(s) {
		viols = append(viols, Violation{
			Path:   path,
			Kind:   PatternMismatch,
			Detail: fmt.Sprintf("%q does not match pattern %s", s, fc.Pattern),
		})
	}
	return s, viols
}

func evalInt(fc *schema.FieldConstraint, raw any, path []string) (any, []Violation) {
	n, ok := coerceInt(raw)
	if !ok {
		return nil, mismatch(path, "int", raw)
	}

	if fc.Min != nil && n < *fc.Min || fc.Max != nil && n > *fc.Max {
		return n, []Violation{{
			Path:   path,
			Kind:   RangeViolation,
			Detail: fmt.Sprintf("%d outside range [%s, %s]", n, boundString(fc.Min), boundString(fc.Max)),
		}}
	}
	return n, nil
}

func evalBool(raw any, path []string) (any, []Violation) {
	b, ok := raw.(bool)
	if !ok {
		return nil, mismatch(path, "bool", raw)
	}
	return b, nil
}

func evalEnum(fc *schema.FieldConstraint, raw any, path []string) (any, []Violation) {
	s, ok := raw.(string)
	if !ok {
		return nil, mismatch(path, "enum", raw)
	}
	for _, allowed := range fc.AllowedValues {
		if s == allowed {
			return s, nil
		}
	}
	return nil, []Violation{{
		Path:   path,
		Kind:   TypeMismatch,
		Detail: fmt.Sprintf("%q is not one of %v", s, fc.AllowedValues),
	}}
}

func evalList(fc *schema.FieldConstraint, raw any, path []string) (any, []Violation) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, mismatch(path, "list", raw)
	}

	var viols []Violation
	coerced := make([]any, 0, len(arr))
	seen := make(map[any][]int)
	for i, elem := range arr {
		value, elemViols := evalField(fc.Elem, elem, pathWith(path, strconv.Itoa(i)))
		viols = append(viols, elemViols...)
		coerced = append(coerced, value)
		if fc.UniqueItems && scalar(value) {
			seen[value] = append(seen[value], i)
		}
	}

	if fc.UniqueItems {
		// Duplicate detection is independent of element validity: an
		// individually valid "a" repeated twice is still a violation.
		// The scan runs over coerced values, so 80 and 80.0 collide and
		// malformed elements (coerced to nil) never reach the map.
		for _, value := range coerced {
			if !scalar(value) {
				continue
			}
			if idxs := seen[value]; len(idxs) > 1 {
				viols = append(viols, Violation{
					Path:   path,
					Kind:   DuplicateItems,
					Detail: fmt.Sprintf("value %v appears %d times", value, len(idxs)),
				})
				delete(seen, value)
			}
		}
	}
	return coerced, viols
}

// scalar reports whether a coerced value is safe to use as a map key for
// the uniqueness scan.
func scalar(v any) bool {
	switch v.(type) {
	case string, int64, bool:
		return true
	}
	return false
}

func mismatch(path []string, want string, raw any) []Violation {
	return []Violation{{
		Path:   path,
		Kind:   TypeMismatch,
		Detail: fmt.Sprintf("expected %s, got %s", want, typeName(raw)),
	}}
}

// coerceInt accepts the integer representations produced by encoding/json
// (float64, json.Number) and yaml.v3 (int, int64, uint64).
func coerceInt(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > 1<<63-1 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		v, err := n.Int64()
		return v, err == nil
	default:
		return 0, false
	}
}

func typeName(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case float64, int, int64, uint64, json.Number:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

func boundString(b *int64) string {
	if b == nil {
		return "-"
	}
	return strconv.FormatInt(*b, 10)
}

// pathWith returns path + name in a fresh slice so sibling branches never
// alias the same backing array.
func pathWith(path []string, name string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, name)
}
