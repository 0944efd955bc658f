/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"fmt"

	"github.com/stratacloud/netschema/pkg/schema"
)

// evalGroup decides pass/fail for one exclusivity group given which member
// keys exist in the input mapping. It runs after all member fields were
// individually validated, so a malformed-but-present member still counts
// toward cardinality.
func evalGroup(g schema.Group, isPresent func(string) bool, path []string) *Violation {
	var present []string
	for _, m := range g.Members {
		if isPresent(m) {
			present = append(present, m)
		}
	}

	switch g.Cardinality {
	case schema.ExactlyOneOf:
		if len(present) == 1 {
			return nil
		}
	case schema.AtMostOneOf:
		if len(present) <= 1 {
			return nil
		}
	case schema.AtLeastOneOf:
		if len(present) >= 1 {
			return nil
		}
	}

	detail := fmt.Sprintf("%s of %v required, %d present", g.Cardinality, g.Members, len(present))
	if len(present) > 0 {
		detail = fmt.Sprintf("%s: %v", detail, present)
	}
	return &Violation{
		Path:    path,
		Kind:    ExclusivityViolation,
		Detail:  detail,
		Members: present,
	}
}
