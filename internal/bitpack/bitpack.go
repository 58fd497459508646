package bitpack

import "math/bits"

// Word is the set of unsigned integer types usable as packed storage.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitsPerWord returns the bit width of W.
func BitsPerWord[W Word]() int {
	return bits.OnesCount64(uint64(^W(0)))
}

// ItemsPerRow returns the number of W words reserved for a row of rowLen bits.
func ItemsPerRow[W Word](rowLen int) int {
	bpw := BitsPerWord[W]()
	return (rowLen + bpw - 1) / bpw
}

// Locate returns the word index and bit index of column j in the row starting at
// word rowBase.
func Locate[W Word](rowBase, j int) (word, bit int) {
	bpw := BitsPerWord[W]()
	return rowBase + j/bpw, j % bpw
}

// Or ORs the low bit of v into column j of the row starting at word rowBase.
func Or[W Word](words []W, rowBase, j int, v byte) {
	w, b := Locate[W](rowBase, j)
	words[w] |= W(v&1) << b
}

// Set sets column j of the row starting at word rowBase.
func Set[W Word](words []W, rowBase, j int) {
	Or(words, rowBase, j, 1)
}

// Test reports whether column j of the row starting at word rowBase is set.
func Test[W Word](words []W, rowBase, j int) bool {
	w, b := Locate[W](rowBase, j)
	return (words[w]>>b)&1 == 1
}

// OnesCount returns the number of set bits in words.
func OnesCount[W Word](words []W) int {
	var n int
	for _, w := range words {
		n += bits.OnesCount64(uint64(w))
	}
	return n
}

// AndCount returns popcount(a & b) over the common prefix of a and b.
func AndCount[W Word](a, b []W) int {
	a, b = trim(a, b)
	var n int
	for i := range a {
		n += bits.OnesCount64(uint64(a[i] & b[i]))
	}
	return n
}

// AndNotCount returns popcount(a &^ b) over the common prefix of a and b.
func AndNotCount[W Word](a, b []W) int {
	a, b = trim(a, b)
	var n int
	for i := range a {
		n += bits.OnesCount64(uint64(a[i] &^ b[i]))
	}
	return n
}

// XorCount returns the Hamming distance between a and b over their common prefix.
func XorCount[W Word](a, b []W) int {
	a, b = trim(a, b)
	var n int
	for i := range a {
		n += bits.OnesCount64(uint64(a[i] ^ b[i]))
	}
	return n
}

func trim[W Word](a, b []W) ([]W, []W) {
	if len(a) > len(b) {
		return a[:len(b)], b
	}
	return a, b[:len(a)]
}
