// Package terrain defines the terrain table that drives texture generation.
package terrain

import (
	"fmt"
	"image/color"
	"regexp"
)

// Record describes one terrain type: a stable numeric id, a lowercase
// identifier used in output filenames, and the base colour the texture
// is synthesized around.
type Record struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color [3]int `json:"color" yaml:"color"`
}

// namePattern matches lowercase identifier names (deep_ocean, salt_flat, ...).
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// NRGBA returns the record's base colour as an opaque NRGBA value.
func (r Record) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(r.Color[0]),
		G: uint8(r.Color[1]),
		B: uint8(r.Color[2]),
		A: 255,
	}
}

// Filename returns the deterministic output filename for the record,
// e.g. "00_deep_ocean.png".
func (r Record) Filename() string {
	return fmt.Sprintf("%02d_%s.png", r.ID, r.Name)
}

// Hex returns the base colour as a #rrggbb hex string.
func (r Record) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", r.Color[0], r.Color[1], r.Color[2])
}

// validate checks a single record against the table schema.
func (r Record) validate() error {
	if r.ID < 0 {
		return fmt.Errorf("record %d: id must be non-negative", r.ID)
	}
	if r.Name == "" {
		return fmt.Errorf("record %d: name is required", r.ID)
	}
	if !namePattern.MatchString(r.Name) {
		return fmt.Errorf("record %d: name %q must be a lowercase identifier", r.ID, r.Name)
	}
	for i, c := range r.Color {
		if c < 0 || c > 255 {
			return fmt.Errorf("record %d: color channel %d out of range: %d (valid: 0-255)", r.ID, i, c)
		}
	}
	return nil
}

// Validate checks a terrain table for invalid records and duplicate ids.
// The returned error names the offending record and the violated
// constraint.
func Validate(records []Record) error {
	seen := make(map[int]string, len(records))
	for _, rec := range records {
		if err := rec.validate(); err != nil {
			return err
		}
		if prev, ok := seen[rec.ID]; ok {
			return fmt.Errorf("record %d (%s): duplicate id, already used by %s", rec.ID, rec.Name, prev)
		}
		seen[rec.ID] = rec.Name
	}
	return nil
}
