/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import "github.com/stratacloud/netschema/pkg/schema"

// registerDNSServerProfile registers DNS server profiles. A profile either
// inherits servers from the device (inherit: {}) or names them explicitly;
// domain_servers uses the API's hyphenated wire name.
func registerDNSServerProfile(reg *schema.Registry) {
	reg.MustRegister(
		schema.NewNode("dns-server-profile.servers",
			schema.WithFields(
				schema.String("primary", schema.Required(), schema.Pattern(ipv4Pattern)),
				schema.String("secondary", schema.Pattern(ipv4Pattern)),
			),
		),
	)

	base := schema.NewNode("dns-server-profile",
		schema.WithFields(
			schema.String("name", schema.Required(), schema.Pattern(namePattern), schema.MaxLen(63)),
			schema.List("domain_servers", schema.String("", schema.Pattern(fqdnPattern)),
				schema.External("domain-servers"), schema.Unique()),
			marker("inherit"),
			schema.Nested("servers", "dns-server-profile.servers"),
		),
		schema.WithGroup(schema.AtMostOne("inherit", "servers")),
	)

	registerFamily(reg, base)
}
