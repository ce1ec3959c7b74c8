package huffman

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// FrequencyTable maps each symbol to the number of times it occurs.
type FrequencyTable[S cmp.Ordered] map[S]int

// Analyze counts the occurrences of each symbol in symbols.
// An empty input yields an empty table.
func Analyze[S cmp.Ordered](symbols []S) FrequencyTable[S] {
	freqs := make(FrequencyTable[S])
	for _, s := range symbols {
		freqs[s]++
	}
	return freqs
}

// AnalyzeString counts the runes of text.
func AnalyzeString(text string) FrequencyTable[rune] {
	freqs := make(FrequencyTable[rune])
	for _, r := range text {
		freqs[r]++
	}
	return freqs
}

// Symbols returns the symbols of the table in ascending order.
func (ft FrequencyTable[S]) Symbols() []S {
	return slices.Sorted(maps.Keys(ft))
}

// Total reports the sum of all counts in the table.
func (ft FrequencyTable[S]) Total() int {
	var total int
	for _, n := range ft {
		total += n
	}
	return total
}

func (ft FrequencyTable[S]) validate() error {
	if len(ft) == 0 {
		return fmt.Errorf("%w: empty frequency table", ErrInvalidInput)
	}
	for s, n := range ft {
		if n <= 0 {
			return fmt.Errorf("%w: symbol %v has count %d", ErrInvalidInput, FormatSymbol(s), n)
		}
	}
	return nil
}
