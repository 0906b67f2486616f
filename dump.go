package romsheet

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// Dump writes a text rendering of each glyph in r to w. Every glyph gets a
// header with its index and the code page 437 character for that position,
// followed by one line per pixel row:
//
//	0x41 'A'
//	  [  XX    ]
//	  [ XXXX   ]
//	  ...
//
// A partial glyph at the end of r is skipped and reported in Result.Trailing.
func Dump(w io.Writer, r io.Reader) (Result, error) {
	var (
		res    Result
		record [GlyphSize]byte
	)
	bw := bufio.NewWriter(w)
	for {
		n, err := io.ReadFull(r, record[:])
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			res.Trailing = n
			break
		}
		if err != nil {
			return res, fmt.Errorf("reading glyph %d: %w", res.Glyphs, err)
		}

		ch := charmap.CodePage437.DecodeByte(byte(res.Glyphs))
		fmt.Fprintf(bw, "0x%02x %q\n", res.Glyphs, ch)
		for _, bits := range record {
			fmt.Fprintf(bw, "  [%s]\n", rowString(bits))
		}
		res.Glyphs++
	}
	return res, bw.Flush()
}

func rowString(bits byte) string {
	var s [GlyphSize]byte
	for col := range s {
		s[col] = ' '
		if (bits<<uint(col))&0x80 != 0 {
			s[col] = 'X'
		}
	}
	return string(s[:])
}
