/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/stratacloud/netschema/pkg/schema"
	"github.com/stratacloud/netschema/pkg/schema/catalog"
	"github.com/stratacloud/netschema/pkg/serializer"
)

// fieldInfo is the serializable description of one field constraint.
type fieldInfo struct {
	Name     string   `json:"name" yaml:"name"`
	Wire     string   `json:"wire,omitempty" yaml:"wire,omitempty"`
	Kind     string   `json:"kind" yaml:"kind"`
	Required bool     `json:"required" yaml:"required"`
	Default  any      `json:"default,omitempty" yaml:"default,omitempty"`
	Pattern  string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Min      *int64   `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *int64   `json:"max,omitempty" yaml:"max,omitempty"`
	MaxLen   *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Values   []string `json:"values,omitempty" yaml:"values,omitempty"`
	Schema   string   `json:"schema,omitempty" yaml:"schema,omitempty"`
	Unique   bool     `json:"unique,omitempty" yaml:"unique,omitempty"`
}

// schemaInfo is the serializable description of one node schema.
type schemaInfo struct {
	Name   string         `json:"name" yaml:"name"`
	Policy string         `json:"policy" yaml:"policy"`
	Fields []fieldInfo    `json:"fields" yaml:"fields"`
	Groups []schema.Group `json:"groups,omitempty" yaml:"groups,omitempty"`
}

func newSchemasCommand() *cli.Command {
	return &cli.Command{
		Name:      "schemas",
		Usage:     "List catalog schemas, or describe one",
		ArgsUsage: "[NAME]",
		Action:    runSchemas,
	}
}

func runSchemas(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut() //nolint:errcheck

	w := serializer.NewWriter(outFormat, out)
	reg := catalog.Default()

	if cmd.Args().Len() == 0 {
		return w.Serialize(ctx, reg.List())
	}

	name := cmd.Args().First()
	node, err := reg.Resolve(name)
	if err != nil {
		return fmt.Errorf("describe %q: %w", name, err)
	}
	return w.Serialize(ctx, describeSchema(node))
}

func describeSchema(node *schema.Node) schemaInfo {
	info := schemaInfo{
		Name:   node.Name,
		Policy: string(node.ExtraPolicy),
		Groups: node.Groups,
	}
	for _, fc := range node.Fields {
		fi := fieldInfo{
			Name:     fc.Name,
			Kind:     string(fc.Kind),
			Required: fc.Required,
			Default:  fc.Default,
			Min:      fc.Min,
			Max:      fc.Max,
			MaxLen:   fc.MaxLength,
			Values:   fc.AllowedValues,
			Schema:   fc.Schema,
			Unique:   fc.UniqueItems,
		}
		if fc.External != "" {
			fi.Wire = fc.External
		}
		if fc.Pattern != nil {
			fi.Pattern = fc.Pattern.String()
		}
		if fc.Kind == schema.KindList && fc.Elem != nil && fc.Elem.Schema != "" {
			fi.Schema = fc.Elem.Schema
		}
		info.Fields = append(info.Fields, fi)
	}
	return info
}
