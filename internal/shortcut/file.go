package shortcut

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatJSON Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFor picks the file format from the path extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("shortcut file %s: unsupported extension", path)
	}
}

type document struct {
	Shortcuts []Shortcut `json:"shortcuts" toml:"shortcuts" yaml:"shortcuts"`
}

func Decode(r io.Reader, format Format) ([]Shortcut, error) {
	var doc document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("decode: unknown format %d", format)
	}
	return doc.Shortcuts, nil
}

func Encode(w io.Writer, format Format, list []Shortcut) error {
	doc := document{Shortcuts: list}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("encode: unknown format %d", format)
	}
}

// Load reads a shortcut file; the format follows the extension.
func Load(path string) ([]Shortcut, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	list, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("shortcut file %s: %w", path, err)
	}
	tracer().Debugf("loaded %d shortcuts from %s", len(list), path)
	return list, nil
}

func Save(path string, list []Shortcut) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, format, list); err != nil {
		return fmt.Errorf("shortcut file %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// LoadInto reads path and stores every entry into table.
func LoadInto(table *Table, path string) (int, error) {
	list, err := Load(path)
	if err != nil {
		return 0, err
	}
	return table.Import(list)
}
