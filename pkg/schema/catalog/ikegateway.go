/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import "github.com/stratacloud/netschema/pkg/schema"

// registerIKEGateway registers IKE gateways. The peer address and the
// authentication method are both unions; dynamic: {} marks a peer with no
// fixed address.
func registerIKEGateway(reg *schema.Registry) {
	reg.MustRegister(
		schema.NewNode("ike-gateway.peer-address",
			schema.WithFields(
				schema.String("ip", schema.Pattern(ipv4Pattern)),
				schema.String("fqdn", schema.Pattern(fqdnPattern), schema.MaxLen(255)),
				marker("dynamic"),
			),
			schema.WithGroup(schema.ExactlyOne("ip", "fqdn", "dynamic")),
		),
		schema.NewNode("ike-gateway.pre-shared-key",
			schema.WithFields(
				schema.String("key", schema.Required(), schema.MaxLen(255)),
			),
		),
		schema.NewNode("ike-gateway.certificate",
			schema.WithFields(
				schema.String("certificate_name", schema.Required(), schema.MaxLen(255)),
				schema.Bool("use_management_as_source", schema.Default(false)),
			),
		),
		schema.NewNode("ike-gateway.authentication",
			schema.WithFields(
				schema.Nested("pre_shared_key", "ike-gateway.pre-shared-key"),
				schema.Nested("certificate", "ike-gateway.certificate"),
			),
			schema.WithGroup(schema.ExactlyOne("pre_shared_key", "certificate")),
		),
		schema.NewNode("ike-gateway.protocol",
			schema.WithFields(
				schema.Enum("version", []string{"ikev1", "ikev2", "ikev2-preferred"},
					schema.Default("ikev2-preferred")),
			),
		),
	)

	base := schema.NewNode("ike-gateway",
		schema.WithFields(
			schema.String("name", schema.Required(), schema.Pattern(namePattern), schema.MaxLen(63)),
			schema.Nested("peer_address", "ike-gateway.peer-address", schema.Required()),
			schema.Nested("authentication", "ike-gateway.authentication", schema.Required()),
			schema.Nested("protocol", "ike-gateway.protocol"),
			schema.String("local_interface"),
		),
	)

	registerFamily(reg, base)
}
