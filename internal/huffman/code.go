package huffman

import (
	"cmp"
	"strings"

	"github.com/abhinav/huffpack/internal/bitio"
)

// Bit is a single bit of a code.
type Bit = bitio.Bit

// Code is the sequence of bits assigned to a symbol:
// the path from the root of the tree to the symbol's leaf,
// with 0 for a left branch and 1 for a right branch.
type Code []Bit

// ParseCode parses a code from a string of '0' and '1' characters.
// Any character other than '1' is read as a zero bit.
func ParseCode(s string) Code {
	c := make(Code, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '1' {
			c[i] = 1
		}
	}
	return c
}

// Len reports the number of bits in the code.
func (c Code) Len() int { return len(c) }

// String renders the code as a string of '0' and '1' characters.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, b := range c {
		sb.WriteByte('0' + byte(b&1))
	}
	return sb.String()
}

// HasPrefix reports whether prefix is a prefix of c.
func (c Code) HasPrefix(prefix Code) bool {
	if len(prefix) > len(c) {
		return false
	}
	for i, b := range prefix {
		if c[i] != b {
			return false
		}
	}
	return true
}

// extend returns a new code with bit b added at the end.
// It never shares memory with c.
func (c Code) extend(b Bit) Code {
	out := make(Code, len(c)+1)
	copy(out, c)
	out[len(c)] = b
	return out
}

// CodeTable maps each symbol to its code.
type CodeTable[S cmp.Ordered] map[S]Code

// GenerateCodes derives the code for every leaf of the tree rooted at root.
//
// Each call builds a new table. A nil root yields an empty table.
// A tree that consists of a lone leaf has no edges and so no codes;
// trees built by BuildTree never have that shape.
func GenerateCodes[S cmp.Ordered](root *Node[S]) CodeTable[S] {
	codes := make(CodeTable[S])
	root.Walk(func(n *Node[S], path Code) {
		if n.IsLeaf() && len(path) > 0 {
			codes[n.Symbol] = path
		}
	})
	return codes
}

// BitLen reports the number of bits needed to encode symbols with this
// table, not counting any padding. It fails with an *UnknownSymbolError if
// a symbol has no code.
func (ct CodeTable[S]) BitLen(symbols []S) (int, error) {
	var n int
	for i, s := range symbols {
		code, ok := ct[s]
		if !ok {
			return 0, &UnknownSymbolError[S]{Symbol: s, Index: i}
		}
		n += len(code)
	}
	return n, nil
}

// WeightedLen reports the total number of bits needed to encode an input
// with the given frequencies: the sum of freq*len(code) over all symbols.
// Symbols without a code are ignored.
func (ct CodeTable[S]) WeightedLen(freqs FrequencyTable[S]) int {
	var n int
	for s, f := range freqs {
		n += f * len(ct[s])
	}
	return n
}
