package romsheet

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Source is a ROM dump positioned at its first glyph.
type Source struct {
	// Name identifies the dump in errors and logs.
	Name string
	// Usable is the number of bytes left after the offset.
	Usable int64
	// Compressed is set when the dump was zstd compressed on disk.
	Compressed bool

	r      io.Reader
	closer io.Closer
}

// OpenSource opens the ROM dump at path and skips offset leading bytes. See
// NewSource for how compressed dumps are handled.
func OpenSource(path string, offset int64) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	src, err := NewSource(path, f, offset)
	if err != nil {
		f.Close()
		return nil, err
	}
	src.closer = f
	return src, nil
}

// NewSource wraps rs, which must be positioned anywhere in a complete dump.
//
// A dump starting with the zstd magic number is decompressed into memory
// first, so offset then counts decompressed bytes. The magic is looked for at
// the start of the dump, before the offset. A dump that carries the magic but
// does not decompress is read as raw glyph data.
func NewSource(name string, rs io.ReadSeeker, offset int64) (*Source, error) {
	src := &Source{Name: name}

	compressed, err := isZstd(rs)
	if err != nil {
		return nil, &InputError{Path: name, Err: err}
	}
	if compressed {
		if data, err := decompress(rs); err == nil {
			rs = bytes.NewReader(data)
			src.Compressed = true
		}
	}

	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &InputError{Path: name, Err: err}
	}
	if offset < 0 || offset > size {
		return nil, &InputError{Path: name, Err: ErrOffset}
	}
	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return nil, &InputError{Path: name, Err: err}
	}
	src.Usable = size - offset
	src.r = rs
	return src, nil
}

func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// Close releases the underlying file, if any.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func isZstd(rs io.ReadSeeker) (bool, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	magic := make([]byte, len(zstdMagic))
	_, err := io.ReadFull(rs, magic)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bytes.Equal(magic, zstdMagic), nil
}

func decompress(rs io.ReadSeeker) ([]byte, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(rs, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}
