package huffman

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/abhinav/huffpack/internal/bitio"
)

// _maxPadding is the largest padding header a decoder accepts.
// Encoders never write more than 7, but frames that pad an already aligned
// payload with a full zero byte (header 8) are still valid.
const _maxPadding = 8

// Frame is an encoded symbol stream as it is stored:
//
//	byte 0:     number of padding bits at the end of the payload (0-8)
//	bytes 1..N: codes of all symbols, packed most significant bit first,
//	            followed by the padding zero bits
type Frame []byte

// Padding reports the padding header of the frame,
// or 0 if the frame has no header.
func (f Frame) Padding() int {
	if len(f) == 0 {
		return 0
	}
	return int(f[0])
}

// Payload returns the packed bits that follow the header.
func (f Frame) Payload() []byte {
	if len(f) == 0 {
		return nil
	}
	return f[1:]
}

// BitLen reports the number of meaningful payload bits in the frame.
// It fails with a *MalformedStreamError if the frame has no header,
// or if the header claims more padding than is allowed or available.
func (f Frame) BitLen() (int, error) {
	if len(f) == 0 {
		return 0, malformedHeader("missing padding header")
	}

	padding := int(f[0])
	if padding > _maxPadding {
		return 0, malformedHeader("padding %d exceeds %d bits", padding, _maxPadding)
	}

	total := 8 * (len(f) - 1)
	if padding > total {
		return 0, malformedHeader("padding %d exceeds %d payload bits", padding, total)
	}
	return total - padding, nil
}

// Bits renders every bit of the frame, header included,
// as a string of '0' and '1' characters.
func (f Frame) Bits() string {
	var sb strings.Builder
	sb.Grow(8 * len(f))
	for _, c := range f {
		fmt.Fprintf(&sb, "%08b", c)
	}
	return sb.String()
}

// Encode encodes symbols with the given code table into a new frame.
//
// It fails with an *UnknownSymbolError if a symbol has no code;
// no frame is returned in that case.
func Encode[S cmp.Ordered](symbols []S, codes CodeTable[S]) (Frame, error) {
	var buf bytes.Buffer
	if _, err := WriteFrame(&buf, symbols, codes); err != nil {
		return nil, err
	}
	return Frame(buf.Bytes()), nil
}

// WriteFrame encodes symbols with the given code table
// and writes the resulting frame to w.
// It returns the number of bytes written.
//
// Every symbol is checked before anything is written,
// so an *UnknownSymbolError leaves w untouched.
func WriteFrame[S cmp.Ordered](w io.Writer, symbols []S, codes CodeTable[S]) (int64, error) {
	nbits, err := codes.BitLen(symbols)
	if err != nil {
		return 0, err
	}

	bw := bitio.NewWriter(w)
	if err := bw.WriteByte(byte((8 - nbits%8) % 8)); err != nil {
		return bw.Written(), fmt.Errorf("write frame header: %w", err)
	}
	for _, s := range symbols {
		bw.WriteBits(codes[s])
	}

	if err := bw.Close(); err != nil {
		return bw.Written(), fmt.Errorf("write frame: %w", err)
	}
	return bw.Written(), nil
}

// decoder states.
const (
	_atRoot     = iota // between symbols
	_descending        // inside a code
)

// Decode decodes a frame with the tree that was used to build its codes.
//
// Decoding walks the tree from root, going left on 0 and right on 1,
// and emits a symbol each time it reaches a leaf.
// It fails with a *MalformedStreamError if the frame header is bad,
// if a bit leads to a missing branch,
// or if the payload ends in the middle of a code.
func Decode[S cmp.Ordered](frame Frame, root *Node[S]) ([]S, error) {
	nbits, err := frame.BitLen()
	if err != nil {
		return nil, err
	}
	if nbits == 0 {
		return nil, nil
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no tree to decode with", ErrInvalidInput)
	}

	var (
		out   []S
		node  = root
		state = _atRoot
		r     = bitio.NewReader(frame.Payload(), nbits)
	)
	for {
		bit, err := r.ReadBit()
		if err != nil { // io.EOF
			break
		}

		if node.IsLeaf() {
			return nil, &MalformedStreamError{
				Offset: r.Offset() - 1,
				Reason: "tree root is a leaf",
			}
		}

		next := node.child(bit)
		if next == nil {
			return nil, &MalformedStreamError{
				Offset: r.Offset() - 1,
				Reason: fmt.Sprintf("no branch for bit %d", bit),
			}
		}

		if next.IsLeaf() {
			out = append(out, next.Symbol)
			node, state = root, _atRoot
		} else {
			node, state = next, _descending
		}
	}

	if state == _descending {
		return nil, &MalformedStreamError{
			Offset: r.Offset(),
			Reason: "stream ends inside a code",
		}
	}
	return out, nil
}

// ReadFrame reads a complete frame from r and decodes it with root.
func ReadFrame[S cmp.Ordered](r io.Reader, root *Node[S]) ([]S, error) {
	frame, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	return Decode(Frame(frame), root)
}
