package terrain

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed table_schema.json
var tableSchemaJSON string

// tableFile is the on-disk shape of a terrain table.
type tableFile struct {
	Terrains []Record `json:"terrains" yaml:"terrains"`
}

// Load reads a terrain table from a .json, .yaml or .yml file and
// validates it. JSON tables are additionally checked against the
// embedded table schema so malformed files fail with a precise error
// before any texture work begins.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read terrain table: %w", err)
	}

	var table tableFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := validateSchema(data); err != nil {
			return nil, fmt.Errorf("terrain table %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("terrain table %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("terrain table %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported terrain table format: %s (supported: .json, .yaml, .yml)", ext)
	}

	if err := Validate(table.Terrains); err != nil {
		return nil, fmt.Errorf("terrain table %s: %w", path, err)
	}
	return table.Terrains, nil
}

// validateSchema checks raw JSON against the embedded table schema.
func validateSchema(data []byte) error {
	schema, err := jsonschema.CompileString("table_schema.json", tableSchemaJSON)
	if err != nil {
		return fmt.Errorf("failed to compile table schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
