/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/stratacloud/netschema/pkg/schema/catalog"
	"github.com/stratacloud/netschema/pkg/serializer"
	"github.com/stratacloud/netschema/pkg/validate"
	"github.com/stratacloud/netschema/pkg/version"
)

func newCanonCommand() *cli.Command {
	return &cli.Command{
		Name:      "canon",
		Usage:     "Validate a payload and emit its canonical outbound mapping",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "schema",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "schema name, e.g. nat-rule.create",
			},
			&cli.BoolFlag{
				Name:  "explicit-only",
				Value: true,
				Usage: "emit only fields explicitly set in the input",
			},
		},
		Action: runCanon,
	}
}

func runCanon(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("exactly one payload file is required")
	}

	payload, err := loadPayload(cmd.Args().First())
	if err != nil {
		return err
	}

	v := validate.New(catalog.Default(), validate.WithVersion(version.Version))
	tree, err := v.Validate(ctx, cmd.String("schema"), payload)
	if err != nil {
		out, closeOut, openErr := openOutput(cmd)
		if openErr != nil {
			return openErr
		}
		defer closeOut() //nolint:errcheck

		// Surface the full report before failing.
		var report *validate.Report
		if errors.As(err, &report) {
			if serr := serializer.NewWriter(outFormat, out).Serialize(ctx, report); serr != nil {
				return serr
			}
			return cli.Exit("payload is invalid", 1)
		}
		return err
	}

	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut() //nolint:errcheck

	canonical := serializer.Canonical(tree, cmd.Bool("explicit-only"))
	return serializer.NewWriter(outFormat, out).Serialize(ctx, canonical)
}
