package romsheet

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySheet is returned when asked to encode a sheet with no rows.
	ErrEmptySheet = errors.New("sheet has no glyph rows")

	// ErrUnknownFormat is returned for output formats romsheet cannot write.
	ErrUnknownFormat = errors.New("unknown image format")

	// ErrScale is returned for scale factors too large to render.
	ErrScale = errors.New("scale factor out of range")

	// ErrOffset is returned when the offset lies past the end of the input.
	ErrOffset = errors.New("offset beyond end of input")
)

// InputError reports a failure to open or position the ROM dump.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ConsistencyError reports a glyph count that does not fill the sheet
// computed from the input size.
type ConsistencyError struct {
	Read     int
	Expected int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("read %d characters, but expected %d", e.Read, e.Expected)
}

// EncodeError reports a failure to produce the output image.
type EncodeError struct {
	Format Format
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("writing %s image: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
