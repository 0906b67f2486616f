package romsheet

import (
	"bufio"
	"image"
	"io"

	"github.com/nfnt/resize"
)

type PreviewOpt func(p *Preview)

// WithThreshold sets the luminosity, between 0 and 1, above which a pixel
// becomes a raised dot.
func WithThreshold(lum float32) PreviewOpt {
	return func(p *Preview) {
		p.threshold = lum
	}
}

// If used, dots are raised for dark pixels instead.
func WithInvertedColors() PreviewOpt {
	return func(p *Preview) {
		p.invert = true
	}
}

// WithColumns limits the preview to cols runes per line. Wider images are
// scaled down to fit.
func WithColumns(cols int) PreviewOpt {
	return func(p *Preview) {
		p.columns = cols
	}
}

// Preview prints images as lines of braille symbols, one symbol per 2x4
// pixel block.
type Preview struct {
	writer    io.Writer
	threshold float32
	invert    bool
	columns   int
}

func NewPreview(w io.Writer, opts ...PreviewOpt) *Preview {
	p := Preview{
		writer:    w,
		threshold: 0.75,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return &p
}

func (p *Preview) Encode(img image.Image) error {
	if p.columns > 0 && img.Bounds().Dx() > p.columns*2 {
		img = resize.Thumbnail(uint(p.columns*2), uint(img.Bounds().Dy()), img, resize.NearestNeighbor)
	}
	bounds := img.Bounds()
	w := bufio.NewWriter(p.writer)

	// Bounds may not start at (0, 0). Rows first for memory locality.
	for py := bounds.Min.Y; py < bounds.Max.Y; py += 4 {
		for px := bounds.Min.X; px < bounds.Max.X; px += 2 {
			var b Braille
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					// Blocks hanging off the right or bottom edge stay unfilled.
					if px+x >= bounds.Max.X || py+y >= bounds.Max.Y {
						continue
					}
					if p.raised(img, px+x, py+y) {
						b.Raise(x, y)
					}
				}
			}
			if _, err := w.WriteString(b.String()); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (p *Preview) raised(img image.Image, x, y int) bool {
	lit := grayscale(img.At(x, y).RGBA()) > float32(0xffff)*p.threshold
	return lit != p.invert
}

// Standard-ish algorithm for determining the best grayscale for human eyes
// 0.21 R + 0.72 G + 0.07 B
func grayscale(r, g, b, a uint32) float32 {
	return 0.21*float32(r) + 0.72*float32(g) + 0.07*float32(b)
}
