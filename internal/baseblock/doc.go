// Package baseblock builds the deterministic seed pattern that every generated
// sketch row is permuted from.
//
// For rowLen columns and onesPerRow ones, the block has rat = rowLen/onesPerRow
// sub-rows. Sub-row i holds ones in columns [i*onesPerRow, (i+1)*onesPerRow), so the
// rat sub-rows partition [0, rowLen) into disjoint runs. The block is stored
// flattened, one byte (0 or 1) per cell.
package baseblock
