/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/stratacloud/netschema/pkg/logging"
	"github.com/stratacloud/netschema/pkg/version"
)

// New builds the netschema root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    "netschema",
		Usage:   "Validate and canonicalize network configuration payloads",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   "yaml",
				Usage:   "output format: yaml, json, table",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "output file path, \"-\" for stdout",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.Setup(cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			newValidateCommand(),
			newCanonCommand(),
			newSchemasCommand(),
		},
	}
}
