package romsheet_test

import (
	"bytes"

	"github.com/kevin-cantwell/romsheet"
)

// rom returns n glyphs where glyph i has every row set to byte(i).
func rom(n int) []byte {
	data := make([]byte, 0, n*romsheet.GlyphSize)
	for i := 0; i < n; i++ {
		data = append(data, bytes.Repeat([]byte{byte(i)}, romsheet.GlyphSize)...)
	}
	return data
}

func source(data []byte, offset int64) *romsheet.Source {
	src, err := romsheet.NewSource("test.rom", bytes.NewReader(data), offset)
	if err != nil {
		panic(err)
	}
	return src
}
