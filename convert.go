package romsheet

import (
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"log"

	"github.com/disintegration/imaging"
)

// Option configures a Converter.
type Option func(c *Converter)

// WithLogger sets where warnings about the input are written.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// WithFormat sets the output container. The default is PNG.
func WithFormat(f Format) Option {
	return func(c *Converter) {
		c.format = f
	}
}

// MaxScale is the largest factor WithScale accepts.
const MaxScale = 64

// WithScale enlarges the finished sheet by an integer factor using nearest
// neighbor sampling. Factors below 2 leave the sheet untouched; factors above
// MaxScale make Render fail with ErrScale.
func WithScale(n int) Option {
	return func(c *Converter) {
		c.scale = n
	}
}

// Converter turns ROM dumps into encoded sheets.
type Converter struct {
	logger *log.Logger
	format Format
	scale  int
}

func NewConverter(opts ...Option) *Converter {
	c := Converter{
		logger: log.New(ioutil.Discard, "", 0),
		format: PNG,
		scale:  1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

/*
Render draws every glyph of src onto a new sheet.

The sheet is sized from src.Usable before anything is read. Once the input is
exhausted the number of glyphs read must match the number of cells on the
sheet, otherwise a *ConsistencyError is returned. A partial glyph at the end
of the input is dropped with a warning.
*/
func (c *Converter) Render(src *Source) (image.Image, error) {
	if c.scale > MaxScale {
		return nil, fmt.Errorf("%w: %d is above %d", ErrScale, c.scale, MaxScale)
	}
	sheet := NewSheet(src.Usable)

	res, err := Rasterize(src, sheet)
	if err != nil {
		return nil, &InputError{Path: src.Name, Err: err}
	}
	if res.Trailing > 0 {
		c.logger.Printf("warning: %d bytes at the end of %s were not processed", res.Trailing, src.Name)
	}

	bounds := sheet.Bounds()
	if expected := ExpectedGlyphs(bounds.Dx(), bounds.Dy()); res.Glyphs != expected {
		return nil, &ConsistencyError{Read: res.Glyphs, Expected: expected}
	}

	if c.scale < 2 || bounds.Empty() {
		return sheet, nil
	}
	return imaging.Resize(sheet, bounds.Dx()*c.scale, bounds.Dy()*c.scale, imaging.NearestNeighbor), nil
}

// Convert renders src and encodes the sheet to w.
func (c *Converter) Convert(w io.Writer, src *Source) error {
	img, err := c.Render(src)
	if err != nil {
		return err
	}
	return NewEncoder(c.format).Encode(w, img)
}

// ConvertFile renders src and writes the sheet to path, replacing any
// existing file only on success.
func (c *Converter) ConvertFile(path string, src *Source) (image.Image, error) {
	img, err := c.Render(src)
	if err != nil {
		return nil, err
	}
	if err := NewEncoder(c.format).WriteFile(path, img); err != nil {
		return nil, err
	}
	return img, nil
}
