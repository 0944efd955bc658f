/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

// Command netschema validates network configuration payloads against the
// built-in schema catalog and emits canonical representations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/stratacloud/netschema/pkg/cli"
)

func main() {
	if err := cli.New().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
