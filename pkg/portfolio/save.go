package portfolio

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/pagescout/pagescout/pkg/constants"
	"github.com/pagescout/pagescout/pkg/errors"
)

// Format identifies a manifest serialization format.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name. The empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatJSON, errors.NewValidationError("format", s, "must be json or yaml")
	}
}

// SaveOption configures a manifest save.
type SaveOption func(*saveOptions)

type saveOptions struct {
	format Format
}

// WithFormat sets the serialization format. JSON is the default and is the
// format the browser catalog consumes.
func WithFormat(f Format) SaveOption {
	return func(o *saveOptions) {
		o.format = f
	}
}

// Save writes the manifest to path, fully replacing any previous contents.
// JSON output is pretty-printed with two-space indentation and is
// byte-for-byte reproducible for identical input.
func (m Manifest) Save(path string, opts ...SaveOption) error {
	o := saveOptions{format: FormatJSON}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := m.marshal(o.format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// marshal serializes the manifest in the given format. An empty manifest
// still serializes as an array, never null.
func (m Manifest) marshal(format Format) ([]byte, error) {
	wire := make([]wireProject, 0, len(m))
	for _, p := range m {
		wire = append(wire, p.toWire())
	}

	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(wire)
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(wire); err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		return buf.Bytes(), nil
	}
}

// Load reads a manifest from path. Files ending in .yaml or .yml are parsed
// as YAML, everything else as JSON.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var wire []wireProject
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &wire); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	default:
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	}

	m := make(Manifest, 0, len(wire))
	for _, w := range wire {
		var p Project
		p.fromWire(w)
		m = append(m, p)
	}
	return m, nil
}
