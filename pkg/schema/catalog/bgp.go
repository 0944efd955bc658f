/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import "github.com/stratacloud/netschema/pkg/schema"

// registerBGPRouteMap registers BGP route maps: ordered entries with match
// criteria and set actions.
func registerBGPRouteMap(reg *schema.Registry) {
	reg.MustRegister(
		schema.NewNode("bgp-route-map.ipv4-nexthop",
			schema.WithFields(
				schema.String("ip_address", schema.Pattern(ipv4Pattern)),
				marker("peer"),
				marker("unchanged"),
			),
			schema.WithGroup(schema.ExactlyOne("ip_address", "peer", "unchanged")),
		),
		schema.NewNode("bgp-route-map.match",
			schema.WithFields(
				schema.String("as_path"),
				schema.Int("med", schema.Range(0, 4294967295)),
				schema.Enum("origin", []string{"igp", "egp", "incomplete"}),
				schema.List("address_prefix", schema.String("", schema.Pattern(prefixPattern)), schema.Unique()),
			),
		),
		schema.NewNode("bgp-route-map.set",
			schema.WithFields(
				// "as" is a reserved word; the canonical attribute is as_.
				schema.String("as_", schema.External("as"), schema.Pattern(`\d+( \d+)*`)),
				schema.Int("local_preference", schema.Range(0, 4294967295)),
				schema.Int("med", schema.Range(0, 4294967295)),
				schema.Int("weight", schema.Range(0, 65535)),
				schema.Enum("origin", []string{"igp", "egp", "incomplete"}),
				schema.Nested("next_hop", "bgp-route-map.ipv4-nexthop"),
			),
		),
		schema.NewNode("bgp-route-map.entry",
			schema.WithFields(
				schema.Int("seq", schema.Required(), schema.Range(1, 65535)),
				schema.Enum("action", []string{"permit", "deny"}, schema.Required()),
				schema.String("description", schema.MaxLen(1023)),
				schema.Nested("match", "bgp-route-map.match"),
				schema.Nested("set", "bgp-route-map.set"),
			),
		),
	)

	base := schema.NewNode("bgp-route-map",
		schema.WithFields(
			schema.String("name", schema.Required(), schema.Pattern(namePattern), schema.MaxLen(63)),
			schema.String("description", schema.MaxLen(1023)),
			schema.NestedList("route_map", "bgp-route-map.entry"),
		),
	)

	registerFamily(reg, base)
}

// registerBGPRedistribution registers redistribution profiles. The outer
// group selects the route source; each source owns an inner group that
// selects the redistribution target, giving the 2-level oneOf cascade
// through ordinary recursive composition.
func registerBGPRedistribution(reg *schema.Registry) {
	sourceNode := func(name string) *schema.Node {
		return schema.NewNode(name,
			schema.WithFields(
				schema.Bool("enable", schema.Default(true)),
				schema.Int("metric", schema.Range(1, 65535)),
				marker("to_bgp"),
				marker("to_ospf"),
			),
			schema.WithGroup(schema.ExactlyOne("to_bgp", "to_ospf")),
		)
	}

	reg.MustRegister(
		sourceNode("bgp-redistribution.static"),
		sourceNode("bgp-redistribution.connected"),
		sourceNode("bgp-redistribution.bgp"),
		sourceNode("bgp-redistribution.ospf"),
	)

	base := schema.NewNode("bgp-redistribution",
		schema.WithFields(
			schema.String("name", schema.Required(), schema.Pattern(namePattern), schema.MaxLen(63)),
			schema.Nested("static", "bgp-redistribution.static"),
			schema.Nested("connected", "bgp-redistribution.connected"),
			schema.Nested("bgp", "bgp-redistribution.bgp"),
			schema.Nested("ospf", "bgp-redistribution.ospf"),
		),
		schema.WithGroup(schema.ExactlyOne("static", "connected", "bgp", "ospf")),
	)

	registerFamily(reg, base)
}
