// Package texture synthesizes seamless placeholder terrain textures.
package texture

import "fmt"

// Style selects the noise model used by the synthesizer.
type Style string

const (
	// StyleClassic is the default frequency-less octave sum. Its output
	// is the pinned reference appearance for all shipped placeholders.
	StyleClassic Style = "classic"

	// StylePerlin swaps the octave sum for coherent Perlin noise. Opt-in
	// only: it produces visibly different (smoother) textures.
	StylePerlin Style = "perlin"
)

// Styles lists the valid noise styles.
func Styles() []Style {
	return []Style{StyleClassic, StylePerlin}
}

// Params configures a single texture synthesis.
type Params struct {
	// Size is the square texture dimension in pixels.
	Size int

	// Strength scales the noise amplitude added to each channel.
	Strength int

	// Seed initializes the pseudo-random sequence when HasSeed is set.
	// Without a seed the output is non-deterministic.
	Seed    int64
	HasSeed bool

	// Style selects the noise model; empty means StyleClassic.
	Style Style
}

// DefaultParams returns the parameters used for shipped placeholders.
func DefaultParams() Params {
	return Params{
		Size:     512,
		Strength: 20,
		Style:    StyleClassic,
	}
}

// Validate checks the parameters before any pixel work begins.
func (p Params) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", p.Size)
	}
	if p.Strength < 0 {
		return fmt.Errorf("noise strength must be non-negative, got %d", p.Strength)
	}
	switch p.Style {
	case "", StyleClassic, StylePerlin:
	default:
		return fmt.Errorf("unknown style: %q (valid: classic, perlin)", p.Style)
	}
	return nil
}

// style resolves the effective style, defaulting to classic.
func (p Params) style() Style {
	if p.Style == "" {
		return StyleClassic
	}
	return p.Style
}
