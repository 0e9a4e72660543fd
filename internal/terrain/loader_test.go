package terrain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeTable(t, "terrain_config.json", `{
	  "terrains": [
	    {"id": 0, "name": "deep_ocean", "color": [11, 30, 61]},
	    {"id": 1, "name": "continental_shelf", "color": [24, 58, 99]}
	  ]
	}`)

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "deep_ocean" || records[0].Color != [3]int{11, 30, 61} {
		t.Errorf("unexpected first record: %+v", records[0])
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTable(t, "terrains.yaml", `
terrains:
  - id: 0
    name: deep_ocean
    color: [11, 30, 61]
  - id: 22
    name: glacier
    color: [190, 208, 220]
`)

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].ID != 22 || records[1].Name != "glacier" {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestLoadJSONSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"channel above range", `{"terrains": [{"id": 0, "name": "deep_ocean", "color": [11, 300, 61]}]}`},
		{"missing color", `{"terrains": [{"id": 0, "name": "deep_ocean"}]}`},
		{"short color array", `{"terrains": [{"id": 0, "name": "deep_ocean", "color": [11, 30]}]}`},
		{"bad name pattern", `{"terrains": [{"id": 0, "name": "Deep Ocean", "color": [11, 30, 61]}]}`},
		{"fractional id", `{"terrains": [{"id": 0.5, "name": "deep_ocean", "color": [11, 30, 61]}]}`},
		{"missing terrains key", `{"records": []}`},
		{"not json", `terrains: []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTable(t, "bad.json", tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadDuplicateIDs(t *testing.T) {
	path := writeTable(t, "dup.json", `{
	  "terrains": [
	    {"id": 4, "name": "hydrothermal_vent_field", "color": [25, 41, 54]},
	    {"id": 4, "name": "tidal_flat", "color": [121, 125, 102]}
	  ]
	}`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention the duplicate: %v", err)
	}
}

func TestLoadYAMLOutOfRangeChannel(t *testing.T) {
	// YAML has no schema pass; range checks come from table validation.
	path := writeTable(t, "bad.yaml", `
terrains:
  - id: 0
    name: deep_ocean
    color: [11, 300, 61]
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected range error")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error should mention the range violation: %v", err)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeTable(t, "terrains.toml", `whatever`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected unsupported format error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
