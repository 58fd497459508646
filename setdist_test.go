package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetFuncs(t *testing.T) {
	const a, b, c = 14, 12, 15

	tests := []struct {
		name string
		fn   Func
		want float64
	}{
		{"Jaccard", JaccardSimilarity, 14.0 / 41.0},
		{"Dice", DiceSimilarity, 28.0 / 55.0},
		{"Czekanowski", CzekanowskiSimilarity, 28.0 / 55.0},
		{"ThreeW", ThreeWSimilarity, 42.0 / 69.0},
		{"SokalSneath", SokalSneathSimilarity, 14.0 / 68.0},
		{"Cosine", CosineSimilarity, 14.0 / math.Sqrt(26*29)},
		{"Otsuka", OtsukaSimilarity, 14.0 / math.Sqrt(26*29)},
		{"OchiaiI", OchiaiISimilarity, 14.0 / (26 * 29)},
		{"SorgenFrei", SorgenFreiSimilarity, 196.0 / (26 * 29)},
		{"MountFord", MountFordSimilarity, 14.0 / 369.0},
		{"McConnaughey", McConnaugheySimilarity, 16.0 / 702.0},
		{"KulczynskiII", KulczynskiIISimilarity, 0.5 * 14 * 55 / (26 * 29)},
		{"DriverKroeber", DriverKroeberSimilarity, 7.0 / (1.0/26 + 1.0/29)},
		{"Johnson", JohnsonSimilarity, 14.0 / (1.0/26 + 1.0/29)},
		{"Simpson", SimpsonSimilarity, 14.0 / 26.0},
		{"BraunBauquet", BraunBauquetSimilarity, 14.0 / 29.0},
		{"JaccardDistance", JaccardDistance, 27.0 / 41.0},
		{"DiceDistance", DiceDistance, 27.0 / 55.0},
		{"Hamming", HammingDistance, 27},
		{"SquaredEuclid", SquaredEuclidDistance, 27},
		{"Canberra", CanberraDistance, 27},
		{"Euclid", EuclidDistance, math.Sqrt(27)},
		{"LanceWilliams", LanceWilliamsDistance, 27.0 / 55.0},
		{"Hellinger", HellingerDistance, 2 * math.Sqrt(1-14.0/(26*29))},
		{"Chord", ChordDistance, math.Sqrt(2 * (1 - 14.0/(26*29)))},
		{"MinkowskiOne", MinkowskiDistance(1), 27},
		{"MinkowskiTwo", MinkowskiDistance(2), math.Sqrt(27)},
		{"SoftJaccard", SoftJaccardSimilarity(DefaultSoftJaccardSmoothing), 14.0 / (41 + 1e-6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.fn(a, b, c), 1e-12)
		})
	}
}

func TestSimilarityDistanceComplement(t *testing.T) {
	pairs := []struct {
		name string
		s, d Func
	}{
		{"Jaccard", JaccardSimilarity, JaccardDistance},
		{"Cosine", CosineSimilarity, CosineDistance},
		{"Simpson", SimpsonSimilarity, SimpsonDistance},
		{"McConnaughey", McConnaugheySimilarity, McConnaugheyDistance},
		{"BraunBauquet", BraunBauquetSimilarity, BraunBauquetDistance},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for _, abc := range [][3]uint64{{1, 0, 0}, {3, 4, 5}, {10, 1, 100}} {
				s := p.s(abc[0], abc[1], abc[2])
				assert.InDelta(t, 1-s, p.d(abc[0], abc[1], abc[2]), 1e-12)
			}
		})
	}
}

func TestIdenticalSets(t *testing.T) {
	assert.Equal(t, 1.0, JaccardSimilarity(5, 0, 0))
	assert.Equal(t, 1.0, DiceSimilarity(5, 0, 0))
	assert.Equal(t, 1.0, CosineSimilarity(5, 0, 0))
	assert.Zero(t, HammingDistance(5, 0, 0))
	assert.Zero(t, LanceWilliamsDistance(5, 0, 0))
}

func TestEmptySets(t *testing.T) {
	assert.True(t, math.IsNaN(JaccardSimilarity(0, 0, 0)))
	assert.Zero(t, SoftJaccardSimilarity(DefaultSoftJaccardSmoothing)(0, 0, 0))
	assert.Zero(t, HammingDistance(0, 0, 0))
}
