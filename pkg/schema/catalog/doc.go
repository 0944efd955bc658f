/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

// Package catalog holds the static node-schema catalog for every resource
// family in the configuration API.
//
// Each family registers a base schema plus create/update/response variants
// derived from it (see pkg/schema). The catalog is built once on first use
// and shared, read-only, by all validations for the lifetime of the
// process.
//
// Families currently registered:
//
//	address                   address objects (ip_netmask/ip_range/ip_wildcard/fqdn)
//	nat-rule                  NAT policy rules with source translation unions
//	bgp-route-map             BGP route maps with match/set entries
//	bgp-redistribution        redistribution profiles (source -> target cascade)
//	logical-router            VRFs, static routes, nexthop unions, BGP timers
//	ike-gateway               IKE peers and authentication unions
//	zone-protection-profile   flood/scan protection thresholds
//	dns-server-profile        DNS server selection with inherit marker
package catalog
