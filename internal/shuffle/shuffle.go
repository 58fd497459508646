// Package shuffle implements the in-place index permutation used to derive sketch
// rows from the base block.
//
// Biased is NOT a uniform Fisher-Yates shuffle. The cursor d runs from len(s)-1 down
// to 2 and swaps s[d] with s[gen() % d]:
//   - the modulus is d, not d+1, so an element never stays at the cursor position;
//   - index 0 (and index 1) are only ever swap destinations, never the cursor.
//
// The resulting distribution over orderings is skewed. Generated sketches are tuned to
// this exact scheme, so it must not be replaced with a textbook shuffle. Whether the
// skew was intended in the reference construction is unknown.
package shuffle

// Source yields non-negative pseudo-random integers.
//
// *rand.PCG, *rand.ChaCha8 (math/rand/v2) and *mt19937.MT19937 satisfy it.
// A Source is advanced on every call and is not safe for concurrent use unless the
// implementation says otherwise.
type Source interface {
	Uint64() uint64
}

// Biased permutes s in place using src. It draws exactly max(len(s)-2, 0) values and
// does not allocate.
func Biased[E any](s []E, src Source) {
	for d := len(s) - 1; d > 1; d-- {
		j := src.Uint64() % uint64(d)
		s[d], s[j] = s[j], s[d]
	}
}

// Identity fills s with 0..len(s)-1.
func Identity(s []int) {
	for i := range s {
		s[i] = i
	}
}
