package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pelletier/go-toml"
	"github.com/santhosh-tekuri/jsonschema/v6"
	schemareflector "github.com/swaggest/jsonschema-go"
	"gopkg.in/yaml.v3"
)

const schemaResource = "mapping-document.json"

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compiledErr    error
)

// ReflectSchema returns the JSON schema of Document.
func ReflectSchema() ([]byte, error) {
	reflector := schemareflector.Reflector{}

	s, err := reflector.Reflect(Document{})
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(s, "", "  ")
}

func documentSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		raw, err := ReflectSchema()
		if err != nil {
			compiledErr = fmt.Errorf("failed to reflect document schema: %w", err)
			return
		}

		js, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compiledErr = fmt.Errorf("failed to decode document schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		compiler.DefaultDraft(jsonschema.Draft7)

		if err := compiler.AddResource(schemaResource, js); err != nil {
			compiledErr = err
			return
		}

		compiledSchema, compiledErr = compiler.Compile(schemaResource)
	})

	return compiledSchema, compiledErr
}

// Validate checks rendered markup against the document schema.
func Validate(data []byte, format Format) error {
	var generic any

	switch format {
	case FormatYAML, "":
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("failed to decode mapping YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("failed to decode mapping JSON: %w", err)
		}
	case FormatTOML:
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return fmt.Errorf("failed to decode mapping TOML: %w", err)
		}

		generic = tree.ToMap()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	// Round-trip through JSON so numbers and maps have the shapes the validator expects.
	raw, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to normalize mapping document: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to normalize mapping document: %w", err)
	}

	schema, err := documentSchema()
	if err != nil {
		return err
	}

	return schema.Validate(inst)
}
