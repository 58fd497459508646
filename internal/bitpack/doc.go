// Package bitpack maps logical bit columns onto packed machine words.
//
// Layout:
//   - A logical row of rowLen bits occupies ItemsPerRow(rowLen) consecutive words.
//   - Column j lives in word rowBase + j/BitsPerWord, bit j%BitsPerWord (LSB first).
//   - Unused high bits of a row's last word stay zero.
//
// Writes are OR-only; bits are never cleared.
package bitpack
