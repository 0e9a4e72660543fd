package terrain

import (
	"image/color"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := Record{ID: 1, Name: "salt_flat", Color: [3]int{210, 206, 190}}

	tests := []struct {
		name    string
		records []Record
		wantErr string
	}{
		{"empty table", nil, ""},
		{"single valid", []Record{valid}, ""},
		{"negative id", []Record{{ID: -1, Name: "tundra", Color: [3]int{136, 142, 128}}}, "non-negative"},
		{"missing name", []Record{{ID: 2, Color: [3]int{1, 2, 3}}}, "name is required"},
		{"uppercase name", []Record{{ID: 2, Name: "SaltFlat", Color: [3]int{1, 2, 3}}}, "lowercase"},
		{"name with spaces", []Record{{ID: 2, Name: "salt flat", Color: [3]int{1, 2, 3}}}, "lowercase"},
		{"channel too big", []Record{{ID: 2, Name: "glacier", Color: [3]int{190, 300, 220}}}, "out of range"},
		{"channel negative", []Record{{ID: 2, Name: "glacier", Color: [3]int{-1, 208, 220}}}, "out of range"},
		{
			"duplicate id",
			[]Record{valid, {ID: 1, Name: "tundra", Color: [3]int{136, 142, 128}}},
			"duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.records)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestRecordFilename(t *testing.T) {
	tests := []struct {
		rec  Record
		want string
	}{
		{Record{ID: 0, Name: "deep_ocean"}, "00_deep_ocean.png"},
		{Record{ID: 7, Name: "mangrove_swamp"}, "07_mangrove_swamp.png"},
		{Record{ID: 36, Name: "aquifer_ceiling"}, "36_aquifer_ceiling.png"},
		{Record{ID: 120, Name: "custom"}, "120_custom.png"},
	}
	for _, tt := range tests {
		if got := tt.rec.Filename(); got != tt.want {
			t.Errorf("Filename() = %s, want %s", got, tt.want)
		}
	}
}

func TestRecordColourHelpers(t *testing.T) {
	rec := Record{ID: 0, Name: "deep_ocean", Color: [3]int{11, 30, 61}}

	want := color.NRGBA{R: 11, G: 30, B: 61, A: 255}
	if got := rec.NRGBA(); got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
	if got := rec.Hex(); got != "#0b1e3d" {
		t.Errorf("Hex() = %s, want #0b1e3d", got)
	}
}

func TestDefaultTable(t *testing.T) {
	records := Default()

	if len(records) != 37 {
		t.Fatalf("expected 37 terrain types, got %d", len(records))
	}
	if err := Validate(records); err != nil {
		t.Fatalf("built-in table is invalid: %v", err)
	}

	// Ids are the client's terrain enum values, dense from zero.
	for i, rec := range records {
		if rec.ID != i {
			t.Errorf("record %d has id %d", i, rec.ID)
		}
	}

	if records[0].Name != "deep_ocean" {
		t.Errorf("first record name = %s, want deep_ocean", records[0].Name)
	}
	if records[0].Color != [3]int{11, 30, 61} {
		t.Errorf("deep_ocean colour = %v, want [11 30 61]", records[0].Color)
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	first := Default()
	first[0].Name = "mutated"

	if Default()[0].Name != "deep_ocean" {
		t.Error("Default() exposed shared backing storage")
	}
}
