package huffman

import (
	"cmp"
	"fmt"
	"strconv"
)

// FormatSymbol renders a symbol for humans.
// Runes are quoted with escapes, bytes are rendered in hex,
// and other types use their default format.
func FormatSymbol[S cmp.Ordered](s S) string {
	switch v := any(s).(type) {
	case rune:
		return strconv.QuoteRune(v)
	case byte:
		return fmt.Sprintf("0x%02x", v)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}
