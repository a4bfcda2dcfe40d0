package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Format selects the markup a document is rendered to.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

const filePerm = 0o644

// ParseFormat parses a format name. The empty string means YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected yaml, json or toml)", s)
	}
}

// FormatFromPath picks a format from the file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Marshal renders a document in the given format.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to marshal mapping YAML: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal mapping YAML: %w", err)
		}

		return buf.Bytes(), nil

	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal mapping JSON: %w", err)
		}

		return append(data, '\n'), nil

	case FormatTOML:
		data, err := toml.Marshal(*doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal mapping TOML: %w", err)
		}

		return data, nil

	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Parse parses markup into a document and applies defaults.
func Parse(data []byte, format Format) (*Document, error) {
	var (
		doc Document
		err error
	)

	switch format {
	case FormatYAML, "":
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping %s: %w", format, err)
	}

	applyDefaults(&doc)

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = DocumentVersion
	}

	if doc.Classes == nil {
		doc.Classes = []ClassMapping{}
	}
}

// Write renders a document to w.
func Write(w io.Writer, doc *Document, format Format) error {
	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write mapping: %w", err)
	}

	return nil
}

// WriteFile renders a document to path, creating or truncating the file.
func WriteFile(doc *Document, path string, format Format) error {
	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}

// LoadFile reads and parses a document, choosing the format from the extension.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data, FormatFromPath(path))
}
