/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import "github.com/stratacloud/netschema/pkg/schema"

// registerZoneProtection registers zone protection profiles: per-protocol
// flood thresholds and reconnaissance scan settings.
func registerZoneProtection(reg *schema.Registry) {
	floodRates := func(extra ...*schema.FieldConstraint) []*schema.FieldConstraint {
		fields := []*schema.FieldConstraint{
			schema.Bool("enable", schema.Default(false)),
			schema.Int("alarm_rate", schema.Range(0, 2000000), schema.Default(int64(10000))),
			schema.Int("activate_rate", schema.Range(0, 2000000), schema.Default(int64(10000))),
			schema.Int("maximal_rate", schema.Range(1, 2000000), schema.Default(int64(40000))),
		}
		return append(fields, extra...)
	}

	reg.MustRegister(
		schema.NewNode("zone-protection-profile.flood-syn",
			schema.WithFields(floodRates(
				schema.Enum("action", []string{"red", "syn-cookies"}, schema.Default("red")),
			)...),
		),
		schema.NewNode("zone-protection-profile.flood-generic",
			schema.WithFields(floodRates()...),
		),
		schema.NewNode("zone-protection-profile.flood",
			schema.WithFields(
				schema.Nested("syn", "zone-protection-profile.flood-syn"),
				schema.Nested("udp", "zone-protection-profile.flood-generic"),
				schema.Nested("icmp", "zone-protection-profile.flood-generic"),
				schema.Nested("icmpv6", "zone-protection-profile.flood-generic"),
				schema.Nested("other_ip", "zone-protection-profile.flood-generic"),
			),
		),
		schema.NewNode("zone-protection-profile.scan",
			schema.WithFields(
				schema.Enum("name", []string{"tcp-port-scan", "udp-port-scan", "host-sweep"},
					schema.Required()),
				schema.Enum("action", []string{"allow", "alert", "block", "block-ip"},
					schema.Default("alert")),
				schema.Int("interval", schema.Range(2, 65535), schema.Default(int64(2))),
				schema.Int("threshold", schema.Range(2, 65535), schema.Default(int64(100))),
			),
		),
		schema.NewNode("zone-protection-profile.scan-white-list",
			schema.WithFields(
				schema.String("name", schema.Required(), schema.Pattern(namePattern), schema.MaxLen(31)),
				schema.String("ipv4", schema.Pattern(ipv4Pattern)),
			),
		),
	)

	base := schema.NewNode("zone-protection-profile",
		schema.WithFields(
			schema.String("name", schema.Required(), schema.Pattern(namePattern), schema.MaxLen(31)),
			schema.String("description", schema.MaxLen(1023)),
			schema.Nested("flood", "zone-protection-profile.flood"),
			schema.NestedList("scan", "zone-protection-profile.scan"),
			schema.NestedList("scan_white_list", "zone-protection-profile.scan-white-list"),
		),
		// A profile that protects against nothing is a configuration error.
		schema.WithGroup(schema.AtLeastOne("flood", "scan")),
	)

	registerFamily(reg, base)
}
