package ldpc

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/dnbaker/distance/internal/bitpack"
)

// Matrix is a packed binary matrix of Rows x RowLen bits.
//
// Row i occupies Words[i*ItemsPerRow : (i+1)*ItemsPerRow]; column j of a row is bit
// j%BitsPerWord of word j/BitsPerWord. High bits past RowLen in a row's last word
// are always zero.
type Matrix[W Word] struct {
	Words       []W
	RowLen      int
	Rows        int
	ItemsPerRow int

	// Prefix is the number of leading rows copied verbatim from the base block
	// (Config.Ratio() with UnalteredInclude, else 0).
	Prefix int
}

// BitsPerWord returns the bit width of W.
func (m *Matrix[W]) BitsPerWord() int {
	return bitpack.BitsPerWord[W]()
}

// Row returns the words of row i. The slice aliases the matrix.
func (m *Matrix[W]) Row(i int) []W {
	return m.Words[i*m.ItemsPerRow : (i+1)*m.ItemsPerRow]
}

// Bit reports whether column j of row i is set.
func (m *Matrix[W]) Bit(i, j int) bool {
	return bitpack.Test(m.Words, i*m.ItemsPerRow, j)
}

// RowWeight returns the number of ones in row i.
func (m *Matrix[W]) RowWeight(i int) int {
	return bitpack.OnesCount(m.Row(i))
}

// RowWeights returns the number of ones of every row, prefix included.
func (m *Matrix[W]) RowWeights() []int {
	out := make([]int, m.Rows)
	for i := range out {
		out[i] = m.RowWeight(i)
	}
	return out
}

// RowBitmap returns the set columns of row i as a roaring bitmap.
func (m *Matrix[W]) RowBitmap(i int) *roaring.Bitmap {
	bm := roaring.New()
	bpw := m.BitsPerWord()
	for k, w := range m.Row(i) {
		v := uint64(w)
		for v != 0 {
			tz := bits.TrailingZeros64(v)
			bm.Add(uint32(k*bpw + tz))
			v &= v - 1
		}
	}
	return bm
}
