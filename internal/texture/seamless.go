package texture

import (
	"image"

	"github.com/disintegration/imaging"
)

// MakeSeamless cross-fades the borders of a square texture against the
// opposite edges so the result tiles without visible seams. The blend
// band is a quarter of the side length.
//
// The fade weight grows with distance from the edge: column 0 is taken
// entirely from the opposite side, column blendWidth-1 is nearly pure
// original. The vertical pass runs on the horizontally blended image,
// not the input. The input is never mutated.
func MakeSeamless(img *image.NRGBA) *image.NRGBA {
	src := imaging.Clone(img)
	out := imaging.Clone(img)

	size := src.Bounds().Dx()
	blendWidth := size / 4
	if blendWidth == 0 {
		return out
	}

	// Horizontal pass: left band vs right edge, reading the original.
	for y := 0; y < src.Bounds().Dy(); y++ {
		for x := 0; x < blendWidth; x++ {
			t := float64(x) / float64(blendWidth)
			opposite := size - blendWidth + x
			blendPixel(out, src, src, x, y, opposite, y, t)
		}
	}

	// Vertical pass: top band vs bottom edge, reading the result of the
	// horizontal pass.
	for x := 0; x < size; x++ {
		for y := 0; y < blendWidth; y++ {
			t := float64(y) / float64(blendWidth)
			opposite := size - blendWidth + y
			blendPixel(out, out, out, x, y, x, opposite, t)
		}
	}

	return out
}

// blendPixel writes dst(x,y) = a(x,y)*t + b(ox,oy)*(1-t) per channel,
// truncated to integer.
func blendPixel(dst, a, b *image.NRGBA, x, y, ox, oy int, t float64) {
	di := dst.PixOffset(x, y)
	ai := a.PixOffset(x, y)
	bi := b.PixOffset(ox, oy)
	for c := 0; c < 3; c++ {
		dst.Pix[di+c] = uint8(float64(a.Pix[ai+c])*t + float64(b.Pix[bi+c])*(1-t))
	}
	dst.Pix[di+3] = 0xff
}
