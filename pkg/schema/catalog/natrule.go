/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import "github.com/stratacloud/netschema/pkg/schema"

// registerNATRule registers NAT policy rules. The source_translation union
// is the catalog's deepest oneOf cascade: exactly one translation mode, and
// dynamic_ip_and_port itself selects exactly one address source.
func registerNATRule(reg *schema.Registry) {
	reg.MustRegister(
		schema.NewNode("nat-rule.static-ip",
			schema.WithFields(
				schema.String("translated_address", schema.Required()),
				schema.Bool("bi_directional", schema.Default(false)),
			),
		),
		schema.NewNode("nat-rule.dynamic-ip",
			schema.WithFields(
				schema.List("translated_address", schema.String(""), schema.Required(), schema.Unique()),
			),
		),
		schema.NewNode("nat-rule.interface-address",
			schema.WithFields(
				schema.String("interface", schema.Required()),
				schema.String("ip", schema.Pattern(ipv4Pattern)),
				schema.String("floating_ip", schema.Pattern(ipv4Pattern)),
			),
			schema.WithGroup(schema.AtMostOne("ip", "floating_ip")),
		),
		schema.NewNode("nat-rule.dynamic-ip-and-port",
			schema.WithFields(
				schema.List("translated_address", schema.String(""), schema.Unique()),
				schema.Nested("interface_address", "nat-rule.interface-address"),
			),
			schema.WithGroup(schema.ExactlyOne("translated_address", "interface_address")),
		),
		schema.NewNode("nat-rule.source-translation",
			schema.WithFields(
				schema.Nested("dynamic_ip_and_port", "nat-rule.dynamic-ip-and-port"),
				schema.Nested("dynamic_ip", "nat-rule.dynamic-ip"),
				schema.Nested("static_ip", "nat-rule.static-ip"),
			),
			schema.WithGroup(schema.ExactlyOne("dynamic_ip_and_port", "dynamic_ip", "static_ip")),
		),
	)

	base := schema.NewNode("nat-rule",
		schema.WithFields(
			schema.String("name", schema.Required(), schema.Pattern(namePattern), schema.MaxLen(63)),
			schema.String("description", schema.MaxLen(1023)),
			schema.Enum("nat_type", []string{"ipv4", "nat64", "nptv6"}, schema.Default("ipv4")),
			// from/to are reserved words in several SDK target languages;
			// the canonical attribute names carry a trailing underscore.
			schema.List("from_", schema.String(""), schema.External("from"), schema.Unique()),
			schema.List("to_", schema.String(""), schema.External("to"), schema.Unique()),
			schema.List("source", schema.String(""), schema.Unique()),
			schema.List("destination", schema.String(""), schema.Unique()),
			schema.String("service"),
			schema.List("tag", schema.String("", schema.MaxLen(127)), schema.Unique()),
			schema.Bool("disabled", schema.Default(false)),
			schema.Nested("source_translation", "nat-rule.source-translation"),
		),
	)

	registerFamily(reg, base)
}
