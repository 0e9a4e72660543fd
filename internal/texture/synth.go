package texture

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/disintegration/imaging"
)

// blurSigma is the Gaussian blur applied after synthesis for a smoother look.
const blurSigma = 1.5

// Perlin noise shape for StylePerlin.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
	perlinScale   = 0.02
)

// Synthesize produces a square texture: the base colour perturbed by
// layered noise plus two low-frequency sine waves for spatial coherence,
// then Gaussian-blurred.
//
// With Params.HasSeed set, the same (colour, params) pair always yields
// byte-identical pixels. The per-pixel draw order (three octave samples,
// then the two wave phases, pixels visited row by row) is part of that
// contract and must not be reordered.
func Synthesize(base color.NRGBA, p Params) (*image.NRGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	seed := p.Seed
	if !p.HasSeed {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var coherent *perlin.Perlin
	if p.style() == StylePerlin {
		coherent = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	}

	img := image.NewNRGBA(image.Rect(0, 0, p.Size, p.Size))
	strength := float64(p.Strength)

	for y := 0; y < p.Size; y++ {
		for x := 0; x < p.Size; x++ {
			noise := 0.0

			if coherent != nil {
				noise += coherent.Noise2D(float64(x)*perlinScale, float64(y)*perlinScale)
			} else {
				for octave := 0; octave < 3; octave++ {
					freq := 1 << octave
					_ = freq // amplitude ladder only; freq is not wired into the sample
					amplitude := 1.0 / float64(octave+1)
					noise += (rng.Float64() - 0.5) * amplitude
				}
			}

			// Low-frequency sine waves give the speckle some horizontal
			// and vertical grain.
			wave1 := math.Sin(float64(x)*0.05+rng.Float64()*0.1) * 0.3
			wave2 := math.Sin(float64(y)*0.07+rng.Float64()*0.1) * 0.3
			noise += (wave1 + wave2) * 0.5

			variation := int(noise * strength)

			i := img.PixOffset(x, y)
			img.Pix[i+0] = clampChannel(int(base.R) + variation)
			img.Pix[i+1] = clampChannel(int(base.G) + variation)
			img.Pix[i+2] = clampChannel(int(base.B) + variation)
			img.Pix[i+3] = 0xff
		}
	}

	return imaging.Blur(img, blurSigma), nil
}

// clampChannel clamps an additive channel value into [0, 255].
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
