/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/stratacloud/netschema/pkg/serializer"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: yaml, json, table", outFormat)
	}
	return outFormat, nil
}

// openOutput resolves the --output flag to a writer. The returned closer is
// a no-op for stdout.
func openOutput(cmd *cli.Command) (io.Writer, func() error, error) {
	path := cmd.String("output")
	if path == "" || path == serializer.StdoutURI {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output %q: %w", path, err)
	}
	return f, f.Close, nil
}

// loadPayload reads a payload mapping from a JSON or YAML file, or from
// stdin when the path is "-". YAML is a superset of JSON here, so one
// decoder covers both.
func loadPayload(path string) (map[string]any, error) {
	var (
		raw []byte
		err error
	)
	if path == serializer.StdoutURI {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payload %q: %w", path, err)
	}

	var payload map[string]any
	if err := yaml.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse payload %q: %w", path, err)
	}
	return payload, nil
}
