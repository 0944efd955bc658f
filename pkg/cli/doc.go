/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the netschema tool.
//
// # Commands
//
// validate - validate payload files against a catalog schema:
//
//	netschema validate --schema nat-rule.create payload.json [more files...]
//
// Each file is validated concurrently; the full violation report for every
// file is printed in the chosen format, and the command exits non-zero when
// any file fails. Payloads may be JSON or YAML; "-" reads stdin.
//
// canon - emit the canonical outbound mapping for a valid payload:
//
//	netschema canon --schema nat-rule.create payload.json
//	netschema canon --schema nat-rule.update --explicit-only=false payload.yaml
//
// Validates the payload and re-emits it with external field aliases and,
// by default, only the fields the payload explicitly set.
//
// schemas - inspect the schema catalog:
//
//	netschema schemas                 # list all registered schemas
//	netschema schemas nat-rule.create # describe fields, groups, aliases
//
// # Global Flags
//
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--output, -o   Output file path, "-" for stdout (default: stdout)
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/stratacloud/netschema/pkg/version.Version=1.0.0'"
package cli
