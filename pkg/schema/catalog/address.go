/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import "github.com/stratacloud/netschema/pkg/schema"

// registerAddress registers address objects. An address is exactly one of
// an IP/netmask, an IP range, an IP wildcard mask, or an FQDN.
func registerAddress(reg *schema.Registry) {
	base := schema.NewNode("address",
		schema.WithFields(
			schema.String("name", schema.Required(), schema.Pattern(namePattern), schema.MaxLen(63)),
			schema.String("description", schema.MaxLen(1023)),
			schema.List("tag", schema.String("", schema.MaxLen(127)), schema.Unique()),
			schema.String("ip_netmask", schema.Pattern(`(\d{1,3}\.){3}\d{1,3}(/\d{1,2})?`)),
			schema.String("ip_range", schema.Pattern(ipv4Pattern+`-`+ipv4Pattern)),
			schema.String("ip_wildcard", schema.Pattern(ipv4Pattern+`/`+ipv4Pattern)),
			schema.String("fqdn", schema.Pattern(fqdnPattern), schema.MaxLen(255)),
		),
		schema.WithGroup(schema.ExactlyOne("ip_netmask", "ip_range", "ip_wildcard", "fqdn")),
	)

	registerFamily(reg, base)
}
