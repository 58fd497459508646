package distance

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/dnbaker/distance/internal/bitpack"
)

// Counts holds the overlap of two sets.
type Counts struct {
	Shared uint64 // |X ∩ Y|
	OnlyX  uint64 // |X \ Y|
	OnlyY  uint64 // |Y \ X|
}

// Score applies f to the counts.
func (c Counts) Score(f Func) float64 {
	return f(c.Shared, c.OnlyX, c.OnlyY)
}

// Union returns |X ∪ Y|.
func (c Counts) Union() uint64 {
	return c.Shared + c.OnlyX + c.OnlyY
}

// CountsWords computes the overlap of two packed bit rows of equal length.
func CountsWords[W bitpack.Word](x, y []W) Counts {
	if len(x) != len(y) {
		panic("distance: row length mismatch")
	}
	return Counts{
		Shared: uint64(bitpack.AndCount(x, y)),
		OnlyX:  uint64(bitpack.AndNotCount(x, y)),
		OnlyY:  uint64(bitpack.AndNotCount(y, x)),
	}
}

// CountsBitmap computes the overlap of two column sets.
func CountsBitmap(x, y *roaring.Bitmap) Counts {
	shared := x.AndCardinality(y)
	return Counts{
		Shared: shared,
		OnlyX:  x.GetCardinality() - shared,
		OnlyY:  y.GetCardinality() - shared,
	}
}
