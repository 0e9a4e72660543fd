package texture

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG encodes img losslessly to path. The encoded file decodes
// back to the exact pixel grid.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create texture %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode texture %s: %w", path, err)
	}
	return nil
}
