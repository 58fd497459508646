// Package ldpc generates sparse binary sketch matrices with an LDPC-style
// construction.
//
// A Config fixes the row width (RowLen), the ones budget (OnesPerRow) and the
// number of row blocks (Height). Generation proceeds in three steps:
//
//  1. Build a deterministic base block of rat = RowLen/OnesPerRow sub-rows whose
//     runs of OnesPerRow ones partition the columns.
//  2. For every output row, permute the flattened base block's cell indices with
//     a biased in-place shuffle (see below) and keep the first RowLen cells.
//  3. Pack the row into ItemsPerRow words of type W (LSB first).
//
// Rows therefore carry OnesPerRow ones in expectation (a hypergeometric draw over
// RowLen*rat cells), not exactly. With UnalteredInclude the rat base sub-rows are
// prepended verbatim.
//
// # Randomness
//
// Generate owns exactly one Source per call and advances it across all rows. By
// default that is a 64-bit Mersenne Twister seeded with DefaultSeed, so output is
// reproducible; use WithSeed, WithSource or WithSourceFactory to take control.
//
// The row shuffle swaps position d with gen() % d for d = n-1 down to 2. It is not
// a uniform shuffle and is kept as-is because downstream consumers are tuned to its
// distribution.
//
// # Usage
//
//	m, err := ldpc.Generate[uint64](ldpc.Config{RowLen: 64, OnesPerRow: 8, Height: 3})
//	if err != nil {
//	    return err // errors.Is(err, ldpc.ErrInvalidConfiguration)
//	}
//	_ = m.Dump(os.Stderr)
package ldpc
