package main

import (
	"bufio"
	"cmp"
	"io"
	"strconv"
	"time"

	"github.com/abhinav/huffpack/internal/huffman"
	"github.com/abhinav/huffpack/internal/stringobj"
	"github.com/mattn/go-runewidth"
)

// symbolRow is one line of the frequency and code listing.
type symbolRow struct {
	Symbol string // formatted for display
	Count  int
	Code   string
}

// fileReport holds the results of processing a single file.
type fileReport struct {
	Name string
	Mode mode

	Symbols []symbolRow // ascending symbol order

	Encoded     string // frame bits; empty unless requested
	Decoded     string // empty unless requested
	DecodedPath string // empty unless kept

	Characters   int // grapheme clusters; text mode only
	OriginalSize int64
	EncodedSize  int64
	CacheHit     bool
	Elapsed      time.Duration
}

// symbolRows lists the symbols of a model in ascending order.
func symbolRows[S cmp.Ordered](m *huffman.Model[S]) []symbolRow {
	freqs := m.Frequencies()
	symbols := freqs.Symbols()
	rows := make([]symbolRow, 0, len(symbols))
	for _, s := range symbols {
		code, _ := m.Code(s)
		rows = append(rows, symbolRow{
			Symbol: huffman.FormatSymbol(s),
			Count:  freqs[s],
			Code:   code.String(),
		})
	}
	return rows
}

// Ratio reports the space saved by the encoded file as a percentage of
// the original size. It is negative if the encoded file is larger.
func (r *fileReport) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return (1 - float64(r.EncodedSize)/float64(r.OriginalSize)) * 100
}

func (r *fileReport) String() string {
	var b stringobj.Builder
	b.Put("name", r.Name)
	b.Put("mode", r.Mode)
	b.Put("symbols", len(r.Symbols))
	b.Put("characters", r.Characters)
	b.Put("originalSize", r.OriginalSize)
	b.Put("encodedSize", r.EncodedSize)
	b.Put("cacheHit", r.CacheHit)
	b.Put("decodedPath", r.DecodedPath)
	b.Put("elapsed", r.Elapsed)
	return b.String()
}

// Write writes the user-facing report to w.
func (r *fileReport) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	line := func(parts ...string) {
		for _, p := range parts {
			bw.WriteString(p)
		}
		bw.WriteByte('\n')
	}

	line()
	line("Processing ", r.Name, "...")

	width := len("Symbol")
	countWidth := len("Count")
	for _, row := range r.Symbols {
		width = max(width, runewidth.StringWidth(row.Symbol))
		countWidth = max(countWidth, len(strconv.Itoa(row.Count)))
	}

	line("Character Frequencies and Huffman Codes:")
	line("  ", runewidth.FillRight("Symbol", width), "  ", runewidth.FillLeft("Count", countWidth), "  Code")
	for _, row := range r.Symbols {
		line("  ",
			runewidth.FillRight(row.Symbol, width), "  ",
			runewidth.FillLeft(strconv.Itoa(row.Count), countWidth), "  ",
			row.Code)
	}

	if len(r.Encoded) > 0 {
		line()
		line("Encoded Text:")
		line(r.Encoded)
	}

	if len(r.Decoded) > 0 {
		line()
		line("Decoded Text (Verification):")
		line(r.Decoded)
	}

	line()
	if r.Characters > 0 {
		line("Characters: ", strconv.Itoa(r.Characters))
	}
	line("Original File Size: ", strconv.FormatInt(r.OriginalSize, 10), " bytes")
	line("Encoded File Size: ", strconv.FormatInt(r.EncodedSize, 10), " bytes")
	line("Compression Ratio for ", r.Name, ": ", strconv.FormatFloat(r.Ratio(), 'f', 2, 64), "%")
	if len(r.DecodedPath) > 0 {
		line("Decoded File: ", r.DecodedPath)
	}
	line("Elapsed: ", r.Elapsed.String())

	return bw.Flush()
}
