// Package distance scores pairs of sets from their overlap counts.
//
// Every measure takes three counts: a, the size of the intersection, b, the
// number of elements only in the first set, and c, the number only in the
// second. Similarities come paired with a distance defined as 1 - similarity.
//
// # Counting
//
// Counts can be taken from packed bit rows (such as the rows produced by the
// ldpc subpackage) or from roaring bitmaps:
//
//	c := distance.CountsWords(m.Row(0), m.Row(1))
//	j := c.Score(distance.JaccardSimilarity)
//
//	c = distance.CountsBitmap(m.RowBitmap(0), m.RowBitmap(1))
//
// # Metrics
//
// Metric enumerates the named measures and Provider maps a Metric to its
// function. Parametrized measures (MinkowskiDistance, SoftJaccardSimilarity)
// are constructed directly.
package distance
