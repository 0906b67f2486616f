/*
Package romsheet renders character ROM dumps as font sheet images.

A character ROM stores each glyph as 8 consecutive bytes, one byte per pixel
row, with bit 7 holding the leftmost pixel. Glyphs are laid out 16 to a row
on a 128 pixel wide sheet. Every cell is painted on a checkerboard of two CGA
magentas and lit pixels are drawn in white:

	f, _ := os.Create("font.png")
	defer f.Close()
	src, _ := romsheet.OpenSource("cga.rom", 0)
	defer src.Close()
	err := romsheet.NewConverter().Convert(f, src)
*/
package romsheet

import (
	"image"
	"image/color"
)

const (
	// GlyphSize is the width and height of a glyph in pixels, and also the
	// number of bytes that encode one glyph.
	GlyphSize = 8
	// GlyphsPerRow is the number of glyph cells in one row of the sheet.
	GlyphsPerRow = 16
	// SheetWidth is the fixed pixel width of every sheet.
	SheetWidth = GlyphSize * GlyphsPerRow
	// BytesPerRow is the amount of input consumed by one row of glyphs.
	BytesPerRow = GlyphSize * GlyphsPerRow
)

var (
	// Primary is the CGA bright magenta used for even checkerboard cells.
	Primary = color.NRGBA{R: 0xFF, G: 0x55, B: 0xFF, A: 0xFF}
	// Secondary is the CGA magenta used for odd checkerboard cells.
	Secondary = color.NRGBA{R: 0xAA, G: 0x00, B: 0xAA, A: 0xFF}
	// Foreground is used for every lit glyph pixel.
	Foreground = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Palette holds every color a sheet can contain.
var Palette = color.Palette{Primary, Secondary, Foreground}

// SheetHeight returns the pixel height of the sheet for usable bytes of
// input. Only whole rows of glyphs count, so anything below BytesPerRow
// yields a zero height.
func SheetHeight(usable int64) int {
	if usable < 0 {
		return 0
	}
	return GlyphSize * int(usable/BytesPerRow)
}

// ExpectedGlyphs is the number of glyph cells in a sheet of the given size.
func ExpectedGlyphs(width, height int) int {
	return (height / GlyphSize) * (width / GlyphSize)
}

// NewSheet allocates a zeroed sheet for usable bytes of input.
func NewSheet(usable int64) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, SheetWidth, SheetHeight(usable)))
}
