package huffman

import (
	"cmp"
	"errors"
	"fmt"
)

// Errors reported by this package.
// Use errors.Is to match them; the concrete errors carry more detail.
var (
	// ErrInvalidInput indicates that a tree could not be built
	// from the given frequencies, or decoding was attempted without a tree.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSymbol indicates that a symbol being encoded
	// has no code in the code table.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrMalformedStream indicates that an encoded frame
	// is truncated or has a corrupt header.
	ErrMalformedStream = errors.New("malformed stream")
)

// UnknownSymbolError is returned when encoding a symbol
// that is absent from the code table.
type UnknownSymbolError[S cmp.Ordered] struct {
	Symbol S
	Index  int // position of the symbol in the input
}

func (e *UnknownSymbolError[S]) Error() string {
	return fmt.Sprintf("%v %v at index %d", ErrUnknownSymbol, FormatSymbol(e.Symbol), e.Index)
}

// Is reports whether target is ErrUnknownSymbol.
func (e *UnknownSymbolError[S]) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// MalformedStreamError is returned when an encoded frame cannot be decoded.
type MalformedStreamError struct {
	// Offset is the payload bit at which decoding failed,
	// or -1 if the frame header itself is bad.
	Offset int
	Reason string
}

func (e *MalformedStreamError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%v: %v", ErrMalformedStream, e.Reason)
	}
	return fmt.Sprintf("%v at bit %d: %v", ErrMalformedStream, e.Offset, e.Reason)
}

// Is reports whether target is ErrMalformedStream.
func (e *MalformedStreamError) Is(target error) bool {
	return target == ErrMalformedStream
}

func malformedHeader(format string, args ...any) error {
	return &MalformedStreamError{Offset: -1, Reason: fmt.Sprintf(format, args...)}
}
