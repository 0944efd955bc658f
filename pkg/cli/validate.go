/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/stratacloud/netschema/pkg/schema/catalog"
	"github.com/stratacloud/netschema/pkg/serializer"
	"github.com/stratacloud/netschema/pkg/validate"
	"github.com/stratacloud/netschema/pkg/version"
)

// fileResult is the per-file outcome serialized by the validate command.
type fileResult struct {
	File   string           `json:"file" yaml:"file"`
	Valid  bool             `json:"valid" yaml:"valid"`
	Report *validate.Report `json:"report,omitempty" yaml:"report,omitempty"`
}

func newValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate payload files against a catalog schema",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "schema",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "schema name, e.g. nat-rule.create",
			},
		},
		Action: runValidate,
	}
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("at least one payload file is required")
	}

	schemaName := cmd.String("schema")
	v := validate.New(catalog.Default(), validate.WithVersion(version.Version))

	// Files are independent; validate them in parallel and keep results in
	// argument order.
	results := make([]fileResult, len(files))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			payload, err := loadPayload(file)
			if err != nil {
				return err
			}

			_, err = v.Validate(gctx, schemaName, payload)
			result := fileResult{File: file, Valid: err == nil}
			if err != nil {
				var report *validate.Report
				if !errors.As(err, &report) {
					return err
				}
				result.Report = report
			}

			mu.Lock()
			results[i] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut() //nolint:errcheck

	if err := serializer.NewWriter(outFormat, out).Serialize(ctx, results); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.Valid {
			failed++
		}
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d file(s) failed validation", failed, len(files)), 1)
	}
	return nil
}
