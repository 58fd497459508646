package ldpc

import "math"

const (
	reasonNotDivisible = "rowlen is not a multiple of ones_per_row"
	reasonNonPositive  = "rowlen and ones_per_row must be positive"
	reasonTooManyOnes  = "ones_per_row exceeds rowlen"
	reasonNegHeight    = "height must be non-negative"
	reasonOverflow     = "matrix size overflows int"
)

// Config describes a sketch matrix.
type Config struct {
	// RowLen is the bit width of one logical row.
	RowLen int

	// OnesPerRow is the number of ones each base sub-row concentrates.
	// RowLen must be a multiple of OnesPerRow.
	OnesPerRow int

	// Height controls the row count: (Height+1) * Ratio() permuted rows.
	Height int

	// UnalteredInclude prepends the Ratio() base sub-rows unpermuted.
	UnalteredInclude bool
}

// Ratio returns rat = RowLen / OnesPerRow, the number of base sub-rows.
func (c Config) Ratio() int {
	if c.OnesPerRow <= 0 {
		return 0
	}
	return c.RowLen / c.OnesPerRow
}

// Rows returns the number of permutation-derived rows.
func (c Config) Rows() int {
	return (c.Height + 1) * c.Ratio()
}

// TotalRows returns Rows plus the unpermuted prefix, if any.
func (c Config) TotalRows() int {
	if c.UnalteredInclude {
		return c.Rows() + c.Ratio()
	}
	return c.Rows()
}

// Validate checks c and returns a *ConfigError on failure.
//
// Besides the divisibility requirement, it rejects non-positive dimensions,
// OnesPerRow > RowLen, negative Height and sizes whose bit count overflows int.
func (c Config) Validate() error {
	if c.RowLen <= 0 || c.OnesPerRow <= 0 {
		return newConfigError(c, reasonNonPositive)
	}
	if c.OnesPerRow > c.RowLen {
		return newConfigError(c, reasonTooManyOnes)
	}
	if c.RowLen%c.OnesPerRow != 0 {
		return newConfigError(c, reasonNotDivisible)
	}
	if c.Height < 0 {
		return newConfigError(c, reasonNegHeight)
	}

	rat := c.Ratio()

	// Base block / index array: RowLen * rat cells.
	if _, ok := mulInt(c.RowLen, rat); !ok {
		return newConfigError(c, reasonOverflow)
	}
	if c.Height == math.MaxInt {
		return newConfigError(c, reasonOverflow)
	}
	rows, ok := mulInt(c.Height+1, rat)
	if !ok {
		return newConfigError(c, reasonOverflow)
	}
	if c.UnalteredInclude {
		if rows > math.MaxInt-rat {
			return newConfigError(c, reasonOverflow)
		}
		rows += rat
	}
	// Words never exceed bits, so bounding the bit count bounds every index.
	if _, ok := mulInt(rows, c.RowLen); !ok {
		return newConfigError(c, reasonOverflow)
	}
	return nil
}

func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
