package baseblock

import (
	"errors"
	"fmt"
)

// ErrNotDivisible is returned when rowLen is not a multiple of onesPerRow.
var ErrNotDivisible = errors.New("row length is not a multiple of ones per row")

// ErrInvalidShape is returned for non-positive dimensions.
var ErrInvalidShape = errors.New("row length and ones per row must be positive")

// Block is a flattened rat x rowLen binary matrix, one byte per cell.
type Block []byte

// Build returns the base block for rowLen columns with onesPerRow ones per sub-row.
func Build(rowLen, onesPerRow int) (Block, error) {
	if rowLen <= 0 || onesPerRow <= 0 {
		return nil, fmt.Errorf("%w: rowLen=%d onesPerRow=%d", ErrInvalidShape, rowLen, onesPerRow)
	}
	if rowLen%onesPerRow != 0 {
		return nil, fmt.Errorf("%w: rowLen=%d onesPerRow=%d", ErrNotDivisible, rowLen, onesPerRow)
	}

	rat := rowLen / onesPerRow
	b := make(Block, rowLen*rat)
	for i := range rat {
		row := b[i*rowLen : (i+1)*rowLen]
		for j := i * onesPerRow; j < (i+1)*onesPerRow; j++ {
			row[j] = 1
		}
	}
	return b, nil
}

// Ratio returns the number of sub-rows for the given row length.
func (b Block) Ratio(rowLen int) int {
	if rowLen == 0 {
		return 0
	}
	return len(b) / rowLen
}

// SubRow returns sub-row i. The slice aliases the block.
func (b Block) SubRow(i, rowLen int) []byte {
	return b[i*rowLen : (i+1)*rowLen]
}

// Ones returns the number of set cells in the whole block.
func (b Block) Ones() int {
	var n int
	for _, v := range b {
		n += int(v)
	}
	return n
}
