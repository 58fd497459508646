package distance

import "math"

// Func scores two sets from their overlap counts: a is the size of the
// intersection, b the number of elements only in the first set and c the number
// only in the second.
type Func func(a, b, c uint64) float64

func sim(fn func(a, b, c float64) float64) (Func, Func) {
	s := func(a, b, c uint64) float64 {
		return fn(float64(a), float64(b), float64(c))
	}
	d := func(a, b, c uint64) float64 {
		return 1 - fn(float64(a), float64(b), float64(c))
	}
	return s, d
}

// Similarities and their complements (distance = 1 - similarity).
//
// Empty inputs follow IEEE-754 arithmetic (0/0 is NaN).
var (
	// JaccardSimilarity is a/(a+b+c), also known as Tanimoto.
	JaccardSimilarity, JaccardDistance = sim(func(a, b, c float64) float64 {
		return a / (a + b + c)
	})

	// DiceSimilarity is 2a/(2a+b+c), also known as Czekanowski.
	DiceSimilarity, DiceDistance = sim(func(a, b, c float64) float64 {
		return 2 * a / (2*a + b + c)
	})

	ThreeWSimilarity, ThreeWDistance = sim(func(a, b, c float64) float64 {
		return 3 * a / (3*a + b + c)
	})

	SokalSneathSimilarity, SokalSneathDistance = sim(func(a, b, c float64) float64 {
		return a / (a + 2*(b+c))
	})

	CosineSimilarity, CosineDistance = sim(func(a, b, c float64) float64 {
		return a / math.Sqrt((a+b)*(a+c))
	})

	OchiaiISimilarity, OchiaiIDistance = sim(func(a, b, c float64) float64 {
		return a / ((a + b) * (a + c))
	})

	SorgenFreiSimilarity, SorgenFreiDistance = sim(func(a, b, c float64) float64 {
		return a * a / ((a + b) * (a + c))
	})

	MountFordSimilarity, MountFordDistance = sim(func(a, b, c float64) float64 {
		return a / (0.5*(a*b+a*c) + b*c)
	})

	McConnaugheySimilarity, McConnaugheyDistance = sim(func(a, b, c float64) float64 {
		return (a*a - b*c) / ((a + b) * (b + c))
	})

	OtsukaSimilarity, OtsukaDistance = sim(func(a, b, c float64) float64 {
		return a / math.Sqrt((a+b)*(a+c))
	})

	KulczynskiIISimilarity, KulczynskiIIDistance = sim(func(a, b, c float64) float64 {
		return 0.5 * a * (2*a + b + c) / ((a + b) * (a + c))
	})

	DriverKroeberSimilarity, DriverKroeberDistance = sim(func(a, b, c float64) float64 {
		return 0.5 * a / (1/(a+b) + 1/(a+c))
	})

	JohnsonSimilarity, JohnsonDistance = sim(func(a, b, c float64) float64 {
		return a / (1/(a+b) + 1/(a+c))
	})

	SimpsonSimilarity, SimpsonDistance = sim(func(a, b, c float64) float64 {
		return a / min(a+b, a+c)
	})

	BraunBauquetSimilarity, BraunBauquetDistance = sim(func(a, b, c float64) float64 {
		return a / max(a+b, a+c)
	})
)

// Aliases.
var (
	CzekanowskiSimilarity = DiceSimilarity
	CzekanowskiDistance   = DiceDistance
	SquaredEuclidDistance = HammingDistance
	CanberraDistance      = HammingDistance
)

// HammingDistance is b+c, the size of the symmetric difference.
func HammingDistance(_, b, c uint64) float64 {
	return float64(b + c)
}

// EuclidDistance is sqrt(b+c).
func EuclidDistance(_, b, c uint64) float64 {
	return math.Sqrt(float64(b + c))
}

// LanceWilliamsDistance is (b+c)/(2a+b+c), also known as Bray-Curtis.
func LanceWilliamsDistance(a, b, c uint64) float64 {
	return float64(b+c) / float64(2*a+b+c)
}

// HellingerDistance is 2*sqrt(1 - a/((a+b)(a+c))).
func HellingerDistance(a, b, c uint64) float64 {
	fa, fb, fc := float64(a), float64(b), float64(c)
	return 2 * math.Sqrt(1-fa/((fa+fb)*(fa+fc)))
}

// ChordDistance is sqrt(2*(1 - a/((a+b)(a+c)))).
func ChordDistance(a, b, c uint64) float64 {
	fa, fb, fc := float64(a), float64(b), float64(c)
	return math.Sqrt(2 * (1 - fa/((fa+fb)*(fa+fc))))
}

// MinkowskiDistance returns (b+c)^(1/p). p must be positive.
func MinkowskiDistance(p float64) Func {
	pinv := 1 / p
	return func(_, b, c uint64) float64 {
		return math.Pow(float64(b+c), pinv)
	}
}

// SoftJaccardSimilarity returns a/(a+b+c+smooth), which stays finite for empty
// sets.
func SoftJaccardSimilarity(smooth float64) Func {
	return func(a, b, c uint64) float64 {
		return float64(a) / (float64(a+b+c) + smooth)
	}
}

// DefaultSoftJaccardSmoothing is the smoothing term used by MetricSoftJaccard.
const DefaultSoftJaccardSmoothing = 1e-6
