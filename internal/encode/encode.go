// Package encode serializes v2 records. YAML output renders multiline
// strings in literal block style for readability; the style is applied per
// call on the node tree, never installed as global serializer state.
package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is a configuration error: unlike per-record
// problems, it aborts the whole store operation.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format selects the output serialization.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// ParseFormat accepts "yaml" (or its "yml" alias) and "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Ext returns the file extension for the format, without the dot.
// The "yml" alias still produces ".yaml" files.
func (f Format) Ext() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == FormatYAML || f == FormatJSON
}

// Marshal serializes v in the given format. JSON is standard compact
// encoding; YAML gets two-space indentation and literal block style for
// any string scalar containing newlines.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.Marshal(v)
	case FormatYAML:
		return marshalYAML(v)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

func marshalYAML(v any) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	blockifyStrings(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}

// blockifyStrings walks the node tree and switches multiline string scalars
// to literal block style. Trailing whitespace is trimmed from each line
// first — literal blocks cannot represent it, and the v1 corpus is full of
// it.
func blockifyStrings(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.Contains(n.Value, "\n") {
		lines := strings.Split(n.Value, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRight(line, " \t")
		}
		n.Value = strings.Join(lines, "\n")
		n.Style = yaml.LiteralStyle
	}
	for _, child := range n.Content {
		blockifyStrings(child)
	}
}
