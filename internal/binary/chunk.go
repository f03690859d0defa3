package binary

import (
	"bytes"
	"fmt"

	"github.com/simonhull/soundfont/internal/types"
)

// ChunkHeaderSize is the size of a RIFF chunk header: FourCC plus length.
const ChunkHeaderSize = 8

// ChunkHeader is the {tag, size} prefix of every RIFF chunk.
type ChunkHeader struct {
	ID     string
	Size   uint32
	Offset int64 // stream offset of the header itself
}

// FourCC reads a four character code. Every byte must be printable ASCII.
func (c *Cursor) FourCC(what string) (string, error) {
	start := c.offset
	b, err := c.ReadExact(4, what)
	if err != nil {
		return "", err
	}

	for _, ch := range b {
		if ch < 0x20 || ch > 0x7E {
			return "", &types.FormatError{
				Path:   c.path,
				Offset: start,
				Reason: fmt.Sprintf("%s is not a printable ASCII four character code: % x", what, b),
			}
		}
	}
	return string(b), nil
}

// ChunkHeader reads a chunk tag and its little-endian length.
func (c *Cursor) ChunkHeader(what string) (ChunkHeader, error) {
	start := c.offset
	id, err := c.FourCC(what + " id")
	if err != nil {
		return ChunkHeader{}, err
	}
	size, err := ReadValue[uint32](c, what+" size")
	if err != nil {
		return ChunkHeader{}, err
	}
	return ChunkHeader{ID: id, Size: size, Offset: start}, nil
}

// ZString reads a fixed-width, NUL-terminated text field of width bytes.
//
// Exactly width bytes are consumed regardless of content. fault is true when
// no terminator occurs within the field or when the string is empty; the
// caller decides whether that matters and what to substitute.
func (c *Cursor) ZString(width int, what string) (s string, fault bool, err error) {
	b, err := c.ReadExact(width, what)
	if err != nil {
		return "", false, err
	}

	n := bytes.IndexByte(b, 0)
	if n < 0 {
		return string(b), true, nil
	}
	return string(b[:n]), n == 0, nil
}
