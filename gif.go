package romsheet

import (
	"image"
)

// paletted redraws img onto the sheet palette. Sheets only ever hold
// palette colors, so the conversion is exact.
func paletted(img image.Image) *image.Paletted {
	if p, ok := img.(*image.Paletted); ok {
		return p
	}
	bounds := img.Bounds()
	target := image.NewPaletted(bounds, Palette)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			target.Set(x, y, img.At(x, y))
		}
	}
	return target
}
