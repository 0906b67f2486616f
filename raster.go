package romsheet

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Result describes one rasterization pass.
type Result struct {
	// Glyphs is the number of complete 8 byte records consumed.
	Glyphs int
	// Trailing is the size of an incomplete final record, if any. Those
	// bytes are not drawn.
	Trailing int
}

// Background returns the checkerboard tone for the glyph at index. The
// index/GlyphsPerRow term shifts the pattern by one cell on every grid row.
func Background(index int) color.NRGBA {
	if (index+index/GlyphsPerRow)%2 == 1 {
		return Secondary
	}
	return Primary
}

// PixelColor returns the color of column col (0 is leftmost) of a glyph row
// whose pixels are encoded in bits, MSB first.
func PixelColor(index int, bits byte, col int) color.NRGBA {
	if (bits<<uint(col))&0x80 != 0 {
		return Foreground
	}
	return Background(index)
}

// Cell returns the pixel rectangle of the glyph at index.
func Cell(index int) image.Rectangle {
	x := (index % GlyphsPerRow) * GlyphSize
	y := (index / GlyphsPerRow) * GlyphSize
	return image.Rect(x, y, x+GlyphSize, y+GlyphSize)
}

/*
Rasterize reads glyph records from r until it is exhausted and paints each one
into its cell of dst. Glyphs whose cell lies outside dst are counted but not
drawn; comparing Result.Glyphs with ExpectedGlyphs catches them.

A short final record is not an error, it is reported in Result.Trailing. Any
other read failure is returned along with the glyphs drawn so far.
*/
func Rasterize(r io.Reader, dst *image.NRGBA) (Result, error) {
	var (
		res    Result
		record [GlyphSize]byte
	)
	bounds := dst.Bounds()
	for {
		n, err := io.ReadFull(r, record[:])
		if err == io.EOF {
			return res, nil
		}
		if err == io.ErrUnexpectedEOF {
			res.Trailing = n
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("reading glyph %d: %w", res.Glyphs, err)
		}

		cell := Cell(res.Glyphs).Add(bounds.Min)
		if cell.In(bounds) {
			paint(dst, cell.Min, res.Glyphs, record)
		}
		res.Glyphs++
	}
}

func paint(dst *image.NRGBA, at image.Point, index int, record [GlyphSize]byte) {
	for row, bits := range record {
		// One contiguous run of GlyphSize pixels per row.
		off := dst.PixOffset(at.X, at.Y+row)
		pix := dst.Pix[off : off+GlyphSize*4 : off+GlyphSize*4]
		for col := 0; col < GlyphSize; col++ {
			c := PixelColor(index, bits, col)
			p := pix[col*4 : col*4+4 : col*4+4]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		}
	}
}
