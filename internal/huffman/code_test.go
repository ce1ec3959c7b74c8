package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want map[rune]string
	}{
		{
			desc: "single symbol",
			give: "aaaa",
			want: map[rune]string{'a': "0"},
		},
		{
			desc: "known example",
			give: "aabbbcc",
			want: map[rune]string{'a': "10", 'b': "0", 'c': "11"},
		},
		{
			desc: "skewed",
			give: "abbccccdddddddd",
			want: map[rune]string{'a': "000", 'b': "001", 'c': "01", 'd': "1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			root, err := BuildTree(AnalyzeString(tt.give))
			require.NoError(t, err)

			got := make(map[rune]string)
			for s, c := range GenerateCodes(root) {
				got[s] = c.String()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateCodesFreshTable(t *testing.T) {
	t.Parallel()

	// Tables from separate calls must not share entries.
	first, err := BuildTree(AnalyzeString("ab"))
	require.NoError(t, err)
	second, err := BuildTree(AnalyzeString("xyz"))
	require.NoError(t, err)

	firstCodes := GenerateCodes(first)
	secondCodes := GenerateCodes(second)

	assert.Len(t, firstCodes, 2)
	assert.Len(t, secondCodes, 3)
	assert.NotContains(t, secondCodes, 'a')
	assert.NotContains(t, firstCodes, 'x')
}

func TestGenerateCodesDegenerateTrees(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, GenerateCodes[rune](nil))
	})

	t.Run("lone leaf", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, GenerateCodes(NewLeaf('a', 1)))
	})
}

func TestGenerateCodesZeroSymbol(t *testing.T) {
	t.Parallel()

	// The zero value is a valid symbol like any other.
	root, err := BuildTree(FrequencyTable[byte]{0: 2, 1: 1})
	require.NoError(t, err)

	codes := GenerateCodes(root)
	assert.Equal(t, "1", codes[0].String())
	assert.Equal(t, "0", codes[1].String())
}

func TestCode(t *testing.T) {
	t.Parallel()

	c := ParseCode("0110")
	assert.Equal(t, Code{0, 1, 1, 0}, c)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, "0110", c.String())

	assert.True(t, c.HasPrefix(ParseCode("01")))
	assert.True(t, c.HasPrefix(Code{}))
	assert.True(t, c.HasPrefix(c))
	assert.False(t, c.HasPrefix(ParseCode("1")))
	assert.False(t, c.HasPrefix(ParseCode("01100")))

	assert.Empty(t, Code(nil).String())
}

func TestCodeExtendDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := make(Code, 2, 10)
	left := base.extend(0)
	right := base.extend(1)

	assert.Equal(t, "000", left.String())
	assert.Equal(t, "001", right.String())
}

func TestCodeTableBitLen(t *testing.T) {
	t.Parallel()

	root, err := BuildTree(AnalyzeString("aabbbcc"))
	require.NoError(t, err)
	codes := GenerateCodes(root)

	t.Run("known symbols", func(t *testing.T) {
		t.Parallel()

		n, err := codes.BitLen([]rune("aabbbcc"))
		require.NoError(t, err)
		assert.Equal(t, 11, n)
		assert.Equal(t, 11, codes.WeightedLen(AnalyzeString("aabbbcc")))
	})

	t.Run("unknown symbol", func(t *testing.T) {
		t.Parallel()

		_, err := codes.BitLen([]rune("abd"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownSymbol)

		var symErr *UnknownSymbolError[rune]
		require.ErrorAs(t, err, &symErr)
		assert.Equal(t, 'd', symErr.Symbol)
		assert.Equal(t, 2, symErr.Index)
		assert.Equal(t, "unknown symbol 'd' at index 2", err.Error())
	})

	t.Run("weighted length ignores unknown symbols", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 2, codes.WeightedLen(FrequencyTable[rune]{'a': 1, 'z': 5}))
	})
}
