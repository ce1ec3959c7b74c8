package huffman

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	refhuffman "go.abhg.dev/algorithm/huffman"
	"pgregory.net/rapid"
)

func frequencyTableGen() *rapid.Generator[FrequencyTable[byte]] {
	return rapid.Custom(func(t *rapid.T) FrequencyTable[byte] {
		m := rapid.MapOfN(rapid.Byte(), rapid.IntRange(1, 1000), 1, -1).Draw(t, "freqs")
		return FrequencyTable[byte](m)
	})
}

func TestRoundTrip_rapid(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			text := []rune(rapid.StringN(1, -1, -1).Draw(t, "text"))

			freqs := Analyze(text)
			root, err := BuildTree(freqs)
			require.NoError(t, err)

			frame, err := Encode(text, GenerateCodes(root))
			require.NoError(t, err)
			assert.Less(t, frame.Padding(), 8)

			// Decode with a tree rebuilt from the same table.
			again, err := BuildTree(freqs)
			require.NoError(t, err)
			got, err := Decode(frame, again)
			require.NoError(t, err)
			assert.Equal(t, text, got)
		})
	})

	t.Run("bytes", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			data := rapid.SliceOfN(rapid.ByteRange(0, 7), 1, -1).Draw(t, "data")

			m, err := NewModel(Analyze(data))
			require.NoError(t, err)

			frame, err := m.Encode(data)
			require.NoError(t, err)

			want, err := m.Codes().BitLen(data)
			require.NoError(t, err)
			got, err := frame.BitLen()
			require.NoError(t, err)
			assert.Equal(t, want, got)

			decoded, err := m.Decode(frame)
			require.NoError(t, err)
			assert.Equal(t, data, decoded)
		})
	})
}

func TestPrefixFree_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		freqs := frequencyTableGen().Draw(t, "freqs")
		root, err := BuildTree(freqs)
		require.NoError(t, err)

		codes := GenerateCodes(root)
		require.Len(t, codes, len(freqs))

		for a, ca := range codes {
			require.NotEmpty(t, ca, "code for %v", a)
			for b, cb := range codes {
				if a == b {
					continue
				}
				assert.False(t, ca.HasPrefix(cb), "%v (%v) has prefix %v (%v)", a, ca, b, cb)
			}
		}

		// With two or more symbols the code is complete:
		// the Kraft sum is exactly one.
		if len(freqs) >= 2 {
			sum := new(big.Rat)
			for _, c := range codes {
				sum.Add(sum, new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), uint(c.Len()))))
			}
			assert.Equal(t, 0, sum.Cmp(big.NewRat(1, 1)), "Kraft sum %v", sum)
		}
	})
}

func TestDeterministic_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		freqs := frequencyTableGen().Draw(t, "freqs")

		first, err := BuildTree(freqs)
		require.NoError(t, err)
		second, err := BuildTree(freqs)
		require.NoError(t, err)

		assert.Equal(t, first.String(), second.String())
		assert.Equal(t, GenerateCodes(first), GenerateCodes(second))
	})
}

// Any two Huffman codes for the same frequencies have the same total
// length, so an independent implementation serves as an oracle.
func TestOptimalLength_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		freqs := frequencyTableGen().Draw(t, "freqs")
		root, err := BuildTree(freqs)
		require.NoError(t, err)
		codes := GenerateCodes(root)

		symbols := freqs.Symbols()
		weights := make([]int, len(symbols))
		for i, s := range symbols {
			weights[i] = freqs[s]
		}

		var want int
		for i, label := range refhuffman.Label(2, weights) {
			want += weights[i] * len(label)
		}

		assert.Equal(t, want, codes.WeightedLen(freqs))
	})
}

func TestKnownExampleLength(t *testing.T) {
	t.Parallel()

	freqs := AnalyzeString("aabbbcc")
	assert.Equal(t, FrequencyTable[rune]{'a': 2, 'b': 3, 'c': 2}, freqs)

	root, err := BuildTree(freqs)
	require.NoError(t, err)
	codes := GenerateCodes(root)

	var oneBit, twoBit int
	for _, c := range codes {
		switch c.Len() {
		case 1:
			oneBit++
		case 2:
			twoBit++
		}
	}
	assert.Equal(t, 1, oneBit)
	assert.Equal(t, 2, twoBit)
	assert.Equal(t, 2*2+3*1+2*2, codes.WeightedLen(freqs))
}
