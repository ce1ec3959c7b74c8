package bitio

import (
	"bytes"
	"io"

	ibitio "github.com/icza/bitio"
)

// Reader reads the bits of a byte slice in order,
// most significant bit of each byte first.
type Reader struct {
	br    *ibitio.Reader
	limit int // number of readable bits
	off   int // bits read so far
}

// NewReader builds a Reader over the first nbits bits of data.
// nbits is clamped to the range [0, 8*len(data)].
func NewReader(data []byte, nbits int) *Reader {
	nbits = max(0, min(nbits, 8*len(data)))
	return &Reader{
		br:    ibitio.NewReader(bytes.NewReader(data)),
		limit: nbits,
	}
}

// ReadBit returns the next bit, or io.EOF if all bits have been read.
func (r *Reader) ReadBit() (Bit, error) {
	if r.off >= r.limit {
		return 0, io.EOF
	}

	b, err := r.br.ReadBool()
	if err != nil {
		return 0, err
	}
	r.off++
	if b {
		return One, nil
	}
	return Zero, nil
}

// Offset reports how many bits have been read.
func (r *Reader) Offset() int { return r.off }

// Remaining reports how many bits are left to read.
func (r *Reader) Remaining() int { return r.limit - r.off }
