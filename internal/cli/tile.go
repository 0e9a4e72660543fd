package cli

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/mapforge/terratex/internal/texture"
)

var (
	// Tile command flags
	tileOutput string
	tileRepeat int
	tileWidth  int
)

// newTileCmd builds the tile command.
func newTileCmd() *cobra.Command {
	tileCmd := &cobra.Command{
		Use:   "tile <texture>",
		Short: "Tile a texture into a contact sheet to check seam quality",
		Long: `Tile a generated texture in an NxN grid and write the sheet as a
PNG. Seams between repeats are where blending artifacts show up, so this
is the quickest way to eyeball a texture's tileability without loading it
into the client.

Examples:
  # 2x2 sheet next to the input
  terratex tile textures/base/00_deep_ocean.png

  # 4x4 sheet scaled down to 1024px wide
  terratex tile textures/base/15_hot_desert_erg.png --repeat 4 --width 1024`,
		Args: cobra.ExactArgs(1),
		RunE: runTile,
	}

	tileCmd.Flags().StringVarP(&tileOutput, "output", "o", "", "output file (default: <texture>_tiled.png)")
	tileCmd.Flags().IntVar(&tileRepeat, "repeat", 2, "number of repeats per axis")
	tileCmd.Flags().IntVar(&tileWidth, "width", 0, "scale the sheet to this width in pixels (0: no scaling)")

	return tileCmd
}

// runTile executes the tile command.
func runTile(cmd *cobra.Command, args []string) error {
	texturePath := args[0]
	if tileRepeat < 1 {
		return fmt.Errorf("repeat must be at least 1, got %d", tileRepeat)
	}
	if tileWidth < 0 {
		return fmt.Errorf("width must be non-negative, got %d", tileWidth)
	}

	src, err := loadImage(texturePath)
	if err != nil {
		return err
	}

	sheet := tileSheet(src, tileRepeat)
	if tileWidth > 0 && tileWidth != sheet.Bounds().Dx() {
		sheet = scaleSheet(sheet, tileWidth)
	}

	outPath := tileOutput
	if outPath == "" {
		ext := filepath.Ext(texturePath)
		outPath = strings.TrimSuffix(texturePath, ext) + "_tiled.png"
	}
	if err := texture.WritePNG(outPath, sheet); err != nil {
		return err
	}

	logger.Info("contact sheet written",
		"file", outPath, "repeat", tileRepeat,
		"size", fmt.Sprintf("%dx%d", sheet.Bounds().Dx(), sheet.Bounds().Dy()))
	return nil
}

// loadImage decodes a texture from disk.
func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture (format: %s): %w", format, err)
	}
	return img, nil
}

// tileSheet repeats src in an n x n grid.
func tileSheet(src image.Image, n int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	sheet := image.NewNRGBA(image.Rect(0, 0, w*n, h*n))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cell := image.Rect(col*w, row*h, (col+1)*w, (row+1)*h)
			xdraw.Draw(sheet, cell, src, b.Min, xdraw.Src)
		}
	}
	return sheet
}

// scaleSheet resizes the sheet to the given width, preserving aspect.
func scaleSheet(sheet *image.NRGBA, width int) *image.NRGBA {
	b := sheet.Bounds()
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), sheet, b, xdraw.Src, nil)
	return scaled
}
