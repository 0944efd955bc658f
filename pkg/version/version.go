/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

// Package version holds build-time version information.
package version

// Version is the netschema version, injected at build time:
//
//	go build -ldflags="-X 'github.com/stratacloud/netschema/pkg/version.Version=1.0.0'"
var Version = "dev"
