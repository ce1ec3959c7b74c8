package huffman

import (
	"cmp"
	"io"
	"maps"
)

// Model bundles a frequency table with the tree and code table built from
// it. A Model is read-only after construction and safe for concurrent use.
type Model[S cmp.Ordered] struct {
	freqs FrequencyTable[S]
	root  *Node[S]
	codes CodeTable[S]
}

// NewModel builds the tree and codes for the given frequencies.
// It fails with ErrInvalidInput under the same conditions as BuildTree.
func NewModel[S cmp.Ordered](freqs FrequencyTable[S]) (*Model[S], error) {
	root, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}

	return &Model[S]{
		freqs: maps.Clone(freqs),
		root:  root,
		codes: GenerateCodes(root),
	}, nil
}

// Frequencies returns a copy of the model's frequency table.
func (m *Model[S]) Frequencies() FrequencyTable[S] {
	return maps.Clone(m.freqs)
}

// Matches reports whether the model was built from exactly these
// frequencies.
func (m *Model[S]) Matches(freqs FrequencyTable[S]) bool {
	return maps.Equal(m.freqs, freqs)
}

// Tree returns the root of the model's tree. It must not be modified.
func (m *Model[S]) Tree() *Node[S] { return m.root }

// Codes returns a copy of the model's code table.
func (m *Model[S]) Codes() CodeTable[S] {
	return maps.Clone(m.codes)
}

// Code returns the code for a symbol, if it has one.
func (m *Model[S]) Code(s S) (Code, bool) {
	c, ok := m.codes[s]
	return c, ok
}

// Encode encodes symbols into a frame with the model's codes.
func (m *Model[S]) Encode(symbols []S) (Frame, error) {
	return Encode(symbols, m.codes)
}

// WriteFrame encodes symbols with the model's codes and writes the frame
// to w.
func (m *Model[S]) WriteFrame(w io.Writer, symbols []S) (int64, error) {
	return WriteFrame(w, symbols, m.codes)
}

// Decode decodes a frame with the model's tree.
func (m *Model[S]) Decode(frame Frame) ([]S, error) {
	return Decode(frame, m.root)
}

// ReadFrame reads a frame from r and decodes it with the model's tree.
func (m *Model[S]) ReadFrame(r io.Reader) ([]S, error) {
	return ReadFrame(r, m.root)
}
