/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"github.com/stratacloud/netschema/pkg/validate"
)

// Canonical re-emits a validated tree as an outbound mapping ready for the
// transport layer:
//
//   - with explicitOnly, only fields present in the original input are
//     emitted, even when their value equals the default, so partial updates
//     do not clobber unspecified server-side fields
//   - field names use the declared external alias (from_ -> from,
//     domain_servers -> domain-servers)
//   - enum members are already primitives; nested trees recurse
//
// Serialization of an already-validated tree cannot fail.
func Canonical(t *validate.Tree, explicitOnly bool) map[string]any {
	out := make(map[string]any)
	for _, fc := range t.Node().Fields {
		value, ok := t.Get(fc.Name)
		if !ok {
			continue
		}
		if explicitOnly && !t.Present(fc.Name) {
			continue
		}
		out[fc.WireName()] = canonicalValue(value, explicitOnly)
	}
	return out
}

func canonicalValue(v any, explicitOnly bool) any {
	switch x := v.(type) {
	case *validate.Tree:
		return Canonical(x, explicitOnly)
	case []*validate.Tree:
		out := make([]any, 0, len(x))
		for _, sub := range x {
			out = append(out, Canonical(sub, explicitOnly))
		}
		return out
	case []any:
		return append([]any(nil), x...)
	default:
		return v
	}
}
