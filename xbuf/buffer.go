// Package xbuf provides the byte sink backing the ipfmt encoders: a
// growable buffer with an optional hard size limit.
package xbuf

import (
	"errors"
	"strconv"
)

// ErrNoSpace is returned when an append would push the buffer past its
// configured limit. The buffer content stays as it was.
var ErrNoSpace = errors.New("xbuf: buffer limit exceeded")

// Buffer accumulates encoded text. The zero value is an empty unlimited
// buffer ready for use.
type Buffer struct {
	buf   []byte
	limit int // 0 means unlimited
}

// New returns an empty buffer without a size limit.
func New() *Buffer {
	return &Buffer{}
}

// NewLimited returns a buffer that refuses to grow beyond limit bytes.
func NewLimited(limit int) *Buffer {
	return &Buffer{limit: limit}
}

func (b *Buffer) fits(n int) error {
	if b.limit > 0 && len(b.buf)+n > b.limit {
		return ErrNoSpace
	}
	return nil
}

// AppendString appends the raw bytes of s.
func (b *Buffer) AppendString(s string) error {
	if err := b.fits(len(s)); err != nil {
		return err
	}

	b.buf = append(b.buf, s...)
	return nil
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) error {
	if err := b.fits(1); err != nil {
		return err
	}

	b.buf = append(b.buf, c)
	return nil
}

// AppendUint appends v as unsigned decimal ASCII.
func (b *Buffer) AppendUint(v uint64) error {
	return b.appendUint(v, 10)
}

// AppendHex appends v as unsigned lowercase hexadecimal ASCII.
func (b *Buffer) AppendHex(v uint64) error {
	return b.appendUint(v, 16)
}

func (b *Buffer) appendUint(v uint64, base int) error {
	n := len(b.buf)
	b.buf = strconv.AppendUint(b.buf, v, base)
	if b.limit > 0 && len(b.buf) > b.limit {
		b.buf = b.buf[:n]
		return ErrNoSpace
	}
	return nil
}

// Bytes returns the accumulated bytes. The slice aliases the buffer
// storage and is valid until the next append or Reset.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// String returns a copy of the accumulated bytes as a string.
func (b *Buffer) String() string {
	return string(b.buf)
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Reset empties the buffer, keeping its storage for reuse.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
