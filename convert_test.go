package romsheet_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/kevin-cantwell/romsheet"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Converter", func() {
	var (
		logs *bytes.Buffer
		conv *romsheet.Converter
	)

	BeforeEach(func() {
		logs = &bytes.Buffer{}
		conv = romsheet.NewConverter(romsheet.WithLogger(log.New(logs, "", 0)))
	})

	It("round trips whole rows through PNG", func() {
		for rows := 1; rows <= 4; rows++ {
			var buf bytes.Buffer
			Expect(conv.Convert(&buf, source(rom(rows*16), 0))).To(Succeed())

			img, err := png.Decode(&buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Bounds()).To(Equal(image.Rect(0, 0, 128, 8*rows)))
			for y := 0; y < img.Bounds().Dy(); y++ {
				for x := 0; x < img.Bounds().Dx(); x++ {
					_, _, _, a := img.At(x, y).RGBA()
					Expect(a).To(Equal(uint32(0xffff)))
				}
			}
		}
		Expect(logs.String()).To(BeEmpty())
	})

	It("skips the offset before the first glyph", func() {
		data := append([]byte{0xFF, 0xFF, 0xFF}, make([]byte, 128)...)
		img, err := conv.Render(source(data, 3))
		Expect(err).NotTo(HaveOccurred())
		Expect(color.NRGBAModel.Convert(img.At(0, 0))).To(Equal(romsheet.Primary))
	})

	It("warns about a trailing partial glyph", func() {
		img, err := conv.Render(source(append(rom(16), 9, 9, 9, 9), 0))
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds().Dy()).To(Equal(8))
		Expect(logs.String()).To(ContainSubstring("warning: 4 bytes at the end of test.rom were not processed"))
	})

	It("rejects input that does not fill whole rows", func() {
		_, err := conv.Render(source(make([]byte, 255), 0))

		var cerr *romsheet.ConsistencyError
		Expect(errors.As(err, &cerr)).To(BeTrue())
		Expect(cerr.Read).To(Equal(31))
		Expect(cerr.Expected).To(Equal(16))
		Expect(err).To(MatchError("read 31 characters, but expected 16"))
	})

	It("rejects glyphs too short for a single row", func() {
		_, err := conv.Render(source(make([]byte, 100), 0))

		var cerr *romsheet.ConsistencyError
		Expect(errors.As(err, &cerr)).To(BeTrue())
		Expect(cerr.Read).To(Equal(12))
		Expect(cerr.Expected).To(BeZero())
	})

	It("renders an empty sheet for less than one glyph but refuses to encode it", func() {
		img, err := conv.Render(source([]byte{1, 2, 3, 4}, 0))
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds().Empty()).To(BeTrue())

		var buf bytes.Buffer
		err = conv.Convert(&buf, source([]byte{1, 2, 3, 4}, 0))
		Expect(errors.Is(err, romsheet.ErrEmptySheet)).To(BeTrue())
		Expect(buf.Len()).To(BeZero())
	})

	It("fails when the input shrinks after it was sized", func() {
		dir, err := os.MkdirTemp("", "romsheet")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "cga.rom")
		Expect(os.WriteFile(path, rom(32), 0644)).To(Succeed())
		src, err := romsheet.OpenSource(path, 0)
		Expect(err).NotTo(HaveOccurred())
		defer src.Close()
		Expect(os.Truncate(path, 128)).To(Succeed())

		out := filepath.Join(dir, "cga.png")
		_, err = conv.ConvertFile(out, src)

		var cerr *romsheet.ConsistencyError
		Expect(errors.As(err, &cerr)).To(BeTrue())
		Expect(cerr.Read).To(Equal(16))
		Expect(cerr.Expected).To(Equal(32))
		_, err = os.Stat(out)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("scales the sheet by whole pixels", func() {
		conv = romsheet.NewConverter(romsheet.WithScale(3))
		data := make([]byte, 128)
		data[0] = 0x80

		img, err := conv.Render(source(data, 0))
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds()).To(Equal(image.Rect(0, 0, 384, 24)))
		for _, p := range []image.Point{{0, 0}, {2, 0}, {2, 2}} {
			Expect(color.NRGBAModel.Convert(img.At(p.X, p.Y))).To(Equal(romsheet.Foreground))
		}
		Expect(color.NRGBAModel.Convert(img.At(3, 0))).To(Equal(romsheet.Primary))
		Expect(color.NRGBAModel.Convert(img.At(24, 0))).To(Equal(romsheet.Secondary))
	})

	It("refuses scale factors above MaxScale", func() {
		conv = romsheet.NewConverter(romsheet.WithScale(romsheet.MaxScale + 1))
		_, err := conv.Render(source(rom(16), 0))
		Expect(errors.Is(err, romsheet.ErrScale)).To(BeTrue())
	})

	It("writes the configured format", func() {
		conv = romsheet.NewConverter(romsheet.WithFormat(romsheet.GIF))
		var buf bytes.Buffer
		Expect(conv.Convert(&buf, source(rom(16), 0))).To(Succeed())
		Expect(buf.String()).To(HavePrefix("GIF8"))
	})
})
