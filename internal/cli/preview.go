package cli

import (
	"fmt"
	"image/color"
	"strings"
)

// ANSI escape codes for terminal colour swatches.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 6
)

// colourSwatch returns an ANSI-coloured block for a colour.
// Uses background colour with spaces for a solid block.
func colourSwatch(c color.NRGBA, width int) string {
	if width <= 0 {
		width = swatchWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}
