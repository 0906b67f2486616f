package romsheet

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is a lossless image container romsheet can write.
type Format int

const (
	PNG Format = iota
	BMP
	TIFF
	QOI
	GIF
)

var formatNames = [...]string{
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
	QOI:  "qoi",
	GIF:  "gif",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat looks up a format by name, ignoring case.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	if name == "tif" {
		return TIFF, nil
	}
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromFilename picks a format from the extension of name.
func FormatFromFilename(name string) (Format, error) {
	return ParseFormat(filepath.Ext(name))
}

// Encoder writes sheets in one format. Create one per conversion; it holds
// the codec state for that run only.
type Encoder struct {
	format Format
	png    png.Encoder
}

// NewEncoder returns an Encoder for format. PNG output uses default
// compression and no interlacing.
func NewEncoder(format Format) *Encoder {
	return &Encoder{
		format: format,
		png:    png.Encoder{CompressionLevel: png.DefaultCompression},
	}
}

// rgba keeps image/png from dropping the alpha channel of opaque sheets, so
// PNG output is always 8 bit RGBA.
type rgba struct {
	image.Image
}

func (rgba) Opaque() bool { return false }

// Format reports the container the encoder writes.
func (enc *Encoder) Format() Format {
	return enc.format
}

// Encode writes img to w as one complete image.
func (enc *Encoder) Encode(w io.Writer, img image.Image) error {
	if img.Bounds().Empty() {
		return &EncodeError{Format: enc.format, Err: ErrEmptySheet}
	}
	var err error
	switch enc.format {
	case PNG:
		err = enc.png.Encode(w, rgba{img})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case QOI:
		err = qoi.Encode(w, img)
	case GIF:
		err = gif.Encode(w, paletted(img), &gif.Options{NumColors: len(Palette)})
	default:
		err = ErrUnknownFormat
	}
	if err != nil {
		return &EncodeError{Format: enc.format, Err: err}
	}
	return nil
}

/*
WriteFile encodes img into the file at path. The image is written to a
temporary file next to path which is renamed over path only once encoding
has succeeded, so a failed run never leaves a truncated image behind.
*/
func (enc *Encoder) WriteFile(path string, img image.Image) (err error) {
	if img.Bounds().Empty() {
		return &EncodeError{Format: enc.format, Err: ErrEmptySheet}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &EncodeError{Format: enc.format, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = enc.Encode(w, img); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return &EncodeError{Format: enc.format, Err: err}
	}
	if err = tmp.Chmod(0644); err != nil {
		return &EncodeError{Format: enc.format, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &EncodeError{Format: enc.format, Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &EncodeError{Format: enc.format, Err: err}
	}
	return nil
}
