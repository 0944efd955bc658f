/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import "github.com/stratacloud/netschema/pkg/schema"

// registerLogicalRouter registers logical routers: VRFs holding interfaces,
// static routes with an 8-variant nexthop union, and BGP session settings.
func registerLogicalRouter(reg *schema.Registry) {
	reg.MustRegister(
		schema.NewNode("logical-router.nexthop",
			schema.WithFields(
				schema.String("ip_address", schema.Pattern(ipv4Pattern)),
				schema.String("ipv6_address"),
				schema.String("fqdn", schema.Pattern(fqdnPattern), schema.MaxLen(255)),
				marker("discard"),
				schema.String("next_lr", schema.MaxLen(63)),
				schema.String("next_vr", schema.MaxLen(63)),
				schema.String("tunnel", schema.MaxLen(63)),
				marker("receive"),
			),
			schema.WithGroup(schema.ExactlyOne(
				"ip_address", "ipv6_address", "fqdn", "discard",
				"next_lr", "next_vr", "tunnel", "receive",
			)),
		),
		schema.NewNode("logical-router.static-route",
			schema.WithFields(
				schema.String("name", schema.Required(), schema.Pattern(namePattern), schema.MaxLen(63)),
				schema.String("destination", schema.Required(), schema.Pattern(prefixPattern)),
				schema.Nested("nexthop", "logical-router.nexthop"),
				schema.Int("metric", schema.Range(1, 65535), schema.Default(int64(10))),
			),
		),
		schema.NewNode("logical-router.routing-table",
			schema.WithFields(
				schema.NestedList("static_routes", "logical-router.static-route"),
			),
		),
		schema.NewNode("logical-router.bgp",
			schema.WithFields(
				schema.Bool("enable", schema.Default(false)),
				schema.String("router_id", schema.Pattern(ipv4Pattern)),
				schema.Int("local_as", schema.Range(1, 4294967295)),
				schema.Int("hold_time", schema.Range(3, 3600), schema.Default(int64(90))),
				schema.Int("keepalive_interval", schema.Range(0, 1200), schema.Default(int64(30))),
			),
		),
		schema.NewNode("logical-router.vrf",
			schema.WithFields(
				schema.String("name", schema.Required(), schema.Pattern(namePattern), schema.MaxLen(63)),
				schema.List("interface", schema.String(""), schema.Unique()),
				schema.Nested("routing_table", "logical-router.routing-table"),
				schema.Nested("bgp", "logical-router.bgp"),
			),
		),
	)

	base := schema.NewNode("logical-router",
		schema.WithFields(
			schema.String("name", schema.Required(), schema.Pattern(namePattern), schema.MaxLen(63)),
			schema.String("description", schema.MaxLen(1023)),
			schema.NestedList("vrf", "logical-router.vrf"),
		),
	)

	registerFamily(reg, base)
}
