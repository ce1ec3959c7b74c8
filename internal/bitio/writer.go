// Package bitio packs bit sequences into bytes and unpacks them again.
//
// Bits are ordered most significant bit first within each byte:
// the first bit written becomes the high bit of the first byte.
//
// It adapts github.com/icza/bitio to the Bit type
// and adds bit accounting and sticky errors on top.
package bitio

import (
	"io"

	ibitio "github.com/icza/bitio"
)

// Bit is a single binary digit. Only the lowest bit is significant.
type Bit uint8

// Bit values.
const (
	Zero Bit = 0
	One  Bit = 1
)

// Largest number of bits handed to the underlying writer at once.
const _chunkBits = 32

// Writer packs bits into bytes and writes them to an io.Writer.
//
// Write errors are sticky: after the first failed write, all following
// writes are dropped and the error is reported by Err and Close.
// If the Writer is closed on a non-byte boundary, the final byte is
// padded with zero bits on the low side.
type Writer struct {
	bw  *ibitio.Writer
	out countWriter
	err error

	bits   int // total number of bits accepted
	closed bool
}

// NewWriter builds a Writer that writes to w.
// Output is buffered until Close.
func NewWriter(w io.Writer) *Writer {
	bw := &Writer{out: countWriter{w: w}}
	bw.bw = ibitio.NewWriter(&bw.out)
	return bw
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(b Bit) {
	w.bits++
	if w.err == nil {
		w.err = w.bw.WriteBool(b&1 == One)
	}
}

// WriteBits appends the given bits in order.
func (w *Writer) WriteBits(bits []Bit) {
	for len(bits) > 0 {
		n := min(len(bits), _chunkBits)

		var v uint64
		for _, b := range bits[:n] {
			v = v<<1 | uint64(b&1)
		}

		w.bits += n
		if w.err == nil {
			w.err = w.bw.WriteBits(v, uint8(n))
		}
		bits = bits[n:]
	}
}

// WriteByte appends the eight bits of c, high bit first.
// It returns the first write error, if any.
func (w *Writer) WriteByte(c byte) error {
	w.bits += 8
	if w.err == nil {
		w.err = w.bw.WriteByte(c)
	}
	return w.err
}

// Len reports the number of bits written so far,
// not counting any padding added by Close.
func (w *Writer) Len() int { return w.bits }

// Written reports the number of bytes handed to the underlying writer.
func (w *Writer) Written() int64 { return w.out.n }

// Err reports the first error encountered while writing, if any.
func (w *Writer) Err() error { return w.err }

// Close pads the final partial byte with zero bits and flushes all
// buffered bytes. It does not close the underlying writer.
// Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true

	if err := w.bw.Close(); w.err == nil {
		w.err = err
	}
	return w.err
}

// countWriter counts the bytes that reach w.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
