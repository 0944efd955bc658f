/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import (
	"sync"

	"github.com/stratacloud/netschema/pkg/schema"
)

// MarkerSchema names the shared empty node schema used by marker
// sub-objects (discard: {}, inherit: {}, peer: {}). A marker has zero
// fields, so presence of the empty object alone signals intent; any key
// inside one is rejected.
const MarkerSchema = "marker"

// Common patterns shared across families.
const (
	ipv4Pattern   = `(\d{1,3}\.){3}\d{1,3}`
	prefixPattern = `(\d{1,3}\.){3}\d{1,3}/\d{1,2}`
	fqdnPattern   = `[a-zA-Z0-9][a-zA-Z0-9._-]*[a-zA-Z0-9]`
	namePattern   = `[0-9a-zA-Z._\- ]+`
)

var (
	defaultOnce sync.Once
	defaultReg  *schema.Registry
)

// Default returns the shared schema registry holding the full catalog.
// Because the catalog is static, it is built once and the in-memory
// representation is reused for the lifetime of the process.
func Default() *schema.Registry {
	defaultOnce.Do(func() {
		reg := schema.NewRegistry()
		Build(reg)
		defaultReg = reg
	})
	return defaultReg
}

// Build registers every resource family into the given registry. Exposed
// so tests can build isolated registries; production code uses Default.
func Build(reg *schema.Registry) {
	reg.MustRegister(schema.NewNode(MarkerSchema))

	registerAddress(reg)
	registerNATRule(reg)
	registerBGPRouteMap(reg)
	registerBGPRedistribution(reg)
	registerLogicalRouter(reg)
	registerIKEGateway(reg)
	registerZoneProtection(reg)
	registerDNSServerProfile(reg)
}

// registerFamily registers a base schema and its three derived variants.
func registerFamily(reg *schema.Registry, base *schema.Node) {
	reg.MustRegister(
		base,
		schema.CreateVariant(base),
		schema.UpdateVariant(base),
		schema.ResponseVariant(base),
	)
}

func marker(name string) *schema.FieldConstraint {
	return schema.Nested(name, MarkerSchema)
}
