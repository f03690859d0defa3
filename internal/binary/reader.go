// Package binary provides type-safe little-endian reading primitives over a
// buffered, forward-only byte stream.
package binary

import (
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/soundfont/internal/types"
)

// minReadAhead is the smallest look-ahead window the cursor allocates.
const minReadAhead = 4096

// Cursor is a pull-based reader over an io.Reader.
//
// Bytes are pulled into a growable look-ahead buffer so that the many short
// field reads of a record decode do not each turn into an I/O call. The read
// index into the buffer is explicit; the buffer is only compacted or grown
// when a request cannot be served from what is already buffered.
type Cursor struct {
	r      io.Reader
	path   string
	buf    []byte
	pos    int   // next unread byte in buf
	end    int   // one past the last valid byte in buf
	offset int64 // bytes consumed from the start of the stream
	eof    error // sticky error from the underlying reader
}

// NewCursor creates a new Cursor reading from r.
func NewCursor(r io.Reader, path string) *Cursor {
	return &Cursor{
		r:    r,
		path: path,
	}
}

// Path returns the file path associated with this cursor.
func (c *Cursor) Path() string {
	return c.path
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int64 {
	return c.offset
}

// Buffered returns the number of bytes read ahead but not yet consumed.
func (c *Cursor) Buffered() int {
	return c.end - c.pos
}

// ReadExact returns the next n bytes and advances past them.
//
// The returned slice aliases the cursor's buffer and is only valid until the
// next call on the cursor. It fails with *types.TruncatedInputError if the
// stream holds fewer than n bytes.
func (c *Cursor) ReadExact(n int, what string) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: negative read length %d while reading %s", c.path, n, what)
	}
	if err := c.fill(n, what); err != nil {
		return nil, err
	}

	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	c.offset += int64(n)
	return b, nil
}

// Skip advances past n bytes without returning them.
func (c *Cursor) Skip(n int64, what string) error {
	if n < 0 {
		return fmt.Errorf("%s: negative skip length %d while skipping %s", c.path, n, what)
	}

	// Serve what we can from the buffer first
	buffered := int64(c.end - c.pos)
	if n <= buffered {
		c.pos += int(n)
		c.offset += n
		return nil
	}
	c.pos, c.end = 0, 0
	c.offset += buffered
	rest := n - buffered

	skipped, err := io.CopyN(io.Discard, c.r, rest)
	c.offset += skipped
	if err != nil {
		return c.truncated(what, int(n), int(buffered+skipped), err)
	}
	return nil
}

// fill makes sure at least n bytes are buffered.
func (c *Cursor) fill(n int, what string) error {
	have := c.end - c.pos
	if have >= n {
		return nil
	}

	// Compact the unread tail to the front of the buffer
	if c.pos > 0 {
		copy(c.buf, c.buf[c.pos:c.end])
		c.pos, c.end = 0, have
	}

	// Grow if the request does not fit
	if cap(c.buf) < n {
		size := max(n, 2*cap(c.buf), minReadAhead)
		grown := make([]byte, size)
		copy(grown, c.buf[:c.end])
		c.buf = grown
	}
	c.buf = c.buf[:cap(c.buf)]

	if c.eof != nil {
		return c.truncated(what, n, have, c.eof)
	}

	read, err := io.ReadAtLeast(c.r, c.buf[c.end:], n-have)
	c.end += read
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			c.eof = io.ErrUnexpectedEOF
		}
		return c.truncated(what, n, c.end-c.pos, err)
	}
	return nil
}

func (c *Cursor) truncated(what string, want, got int, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return &types.TruncatedInputError{
		Path:   c.path,
		What:   what,
		Offset: c.offset,
		Want:   want,
		Got:    got,
		Err:    err,
	}
}

// ReadValue reads a little-endian value of type T and advances past it.
func ReadValue[T Integer](c *Cursor, what string) (T, error) {
	b, err := c.ReadExact(sizeOf[T](), what)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeLE[T](b), nil
}

// Chain allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks inside record decoders.
type Chain struct {
	*Cursor
	err error
}

// NewChain creates a new Chain over c.
func NewChain(c *Cursor) *Chain {
	return &Chain{Cursor: c}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T Integer](ch *Chain, what string) T {
	if ch.err != nil {
		var zero T
		return zero
	}

	val, err := ReadValue[T](ch.Cursor, what)
	if err != nil {
		ch.err = err
		var zero T
		return zero
	}

	return val
}

// ZString reads a fixed-width NUL-terminated field, accumulating any error.
// The fault flag has the same meaning as for Cursor.ZString.
func (ch *Chain) ZString(width int, what string) (string, bool) {
	if ch.err != nil {
		return "", false
	}

	s, fault, err := ch.Cursor.ZString(width, what)
	if err != nil {
		ch.err = err
		return "", false
	}
	return s, fault
}

// Error returns the accumulated error, if any.
func (ch *Chain) Error() error {
	return ch.err
}
