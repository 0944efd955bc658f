/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// StdoutURI is the special output path indicating stdout.
const StdoutURI = "-"

// Format selects the output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// IsUnknown reports whether the format is not one of the supported values.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	}
	return true
}

// Writer serializes arbitrary data to an output stream in the configured
// format.
type Writer struct {
	format Format
	out    io.Writer
}

// NewWriter creates a Writer for the given format and destination. Unknown
// formats fall back to JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a Writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// Serialize writes data to the destination in the configured format.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()

	case FormatTable:
		return w.serializeTable(data)

	default:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		return nil
	}
}

// serializeTable renders data as flattened FIELD/VALUE rows. Structures are
// normalized through JSON first so field names match the other formats.
func (w *Writer) serializeTable(data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to flatten data: %w", err)
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("failed to flatten data: %w", err)
	}

	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	flatten(tree, "", func(key string, value any) {
		fmt.Fprintf(tw, "%s\t%v\n", key, value)
	})
	return tw.Flush()
}

func flatten(v any, prefix string, emit func(key string, value any)) {
	switch x := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := k
			if prefix != "" {
				child = prefix + "." + k
			}
			flatten(x[k], child, emit)
		}
	case []any:
		for i, elem := range x {
			flatten(elem, prefix+"["+strconv.Itoa(i)+"]", emit)
		}
	default:
		if prefix == "" {
			prefix = "."
		}
		emit(prefix, v)
	}
}
