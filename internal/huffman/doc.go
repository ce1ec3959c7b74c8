// Package huffman implements a binary Huffman codec.
//
// Encoding an input takes four steps:
//
//	freqs := huffman.Analyze(symbols)       // count symbols
//	root, err := huffman.BuildTree(freqs)   // build the tree
//	codes := huffman.GenerateCodes(root)    // derive prefix-free codes
//	frame, err := huffman.Encode(symbols, codes)
//
// Decoding needs the same tree:
//
//	symbols, err := huffman.Decode(frame, root)
//
// The code table is never stored in the frame.
// Callers that need to decode later must keep the tree (see Model),
// or rebuild it from the same frequency table;
// BuildTree is deterministic, so that yields identical codes.
package huffman
