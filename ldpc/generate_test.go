package ldpc

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/dnbaker/distance/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Shape(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantRows  int
		wantItems int // for uint64 words
	}{
		{"SixByThree", Config{RowLen: 6, OnesPerRow: 3}, 2, 1},
		{"SixByThreeUnaltered", Config{RowLen: 6, OnesPerRow: 3, UnalteredInclude: true}, 4, 1},
		{"Tall", Config{RowLen: 12, OnesPerRow: 4, Height: 5}, 18, 1},
		{"TallUnaltered", Config{RowLen: 12, OnesPerRow: 4, Height: 5, UnalteredInclude: true}, 21, 1},
		{"WordAligned", Config{RowLen: 64, OnesPerRow: 16, Height: 1}, 8, 1},
		{"Spill", Config{RowLen: 66, OnesPerRow: 11}, 6, 2},
		{"SingleColumn", Config{RowLen: 1, OnesPerRow: 1, Height: 3}, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Generate[uint64](tt.cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.wantRows, m.Rows)
			assert.Equal(t, tt.cfg.TotalRows(), m.Rows)
			assert.Equal(t, tt.wantItems, m.ItemsPerRow)
			assert.Len(t, m.Words, tt.wantRows*tt.wantItems)
			assert.Equal(t, tt.cfg.RowLen, m.RowLen)

			m8, err := Generate[uint8](tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, (tt.cfg.RowLen+7)/8, m8.ItemsPerRow)
			assert.Len(t, m8.Words, tt.wantRows*m8.ItemsPerRow)
		})
	}
}

func TestGenerate_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		reason string
	}{
		{"NotDivisible", Config{RowLen: 7, OnesPerRow: 3}, reasonNotDivisible},
		{"NotDivisibleTall", Config{RowLen: 10, OnesPerRow: 4, Height: 9}, reasonNotDivisible},
		{"ZeroOnes", Config{RowLen: 6, OnesPerRow: 0}, reasonNonPositive},
		{"ZeroRowLen", Config{RowLen: 0, OnesPerRow: 3}, reasonNonPositive},
		{"NegativeRowLen", Config{RowLen: -6, OnesPerRow: 3}, reasonNonPositive},
		{"TooManyOnes", Config{RowLen: 4, OnesPerRow: 8}, reasonTooManyOnes},
		{"NegativeHeight", Config{RowLen: 6, OnesPerRow: 3, Height: -1}, reasonNegHeight},
		{"OverflowHeight", Config{RowLen: 6, OnesPerRow: 3, Height: math.MaxInt / 2}, reasonOverflow},
		{"OverflowBlock", Config{RowLen: math.MaxInt/2 + 1, OnesPerRow: 1}, reasonOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := testutil.NewScriptedSource(1)
			m, err := Generate[uint64](tt.cfg, WithSource(src))

			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))

			var ce *ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.cfg.RowLen, ce.RowLen)
			assert.Equal(t, tt.cfg.OnesPerRow, ce.OnesPerRow)
			assert.Equal(t, tt.cfg.Height, ce.Height)
			assert.Equal(t, tt.reason, ce.Reason)

			// Rejected before any row is drawn.
			assert.Zero(t, src.Draws())
		})
	}
}

func TestGenerate_UnalteredPrefixMatchesBaseBlock(t *testing.T) {
	m, err := Generate[uint64](Config{RowLen: 6, OnesPerRow: 3, UnalteredInclude: true})
	require.NoError(t, err)

	require.Equal(t, 4, m.Rows)
	assert.Equal(t, 2, m.Prefix)
	assert.Equal(t, uint64(0b000111), m.Words[0]) // 111000, LSB first
	assert.Equal(t, uint64(0b111000), m.Words[1]) // 000111
}

func TestGenerate_UnalteredPrefixPerRowPacking(t *testing.T) {
	// 12 columns in uint8 words: two words per row, rows do not share words.
	cfg := Config{RowLen: 12, OnesPerRow: 4, UnalteredInclude: true}
	m, err := Generate[uint8](cfg)
	require.NoError(t, err)

	require.Equal(t, 3, m.Prefix)
	require.Equal(t, 2, m.ItemsPerRow)
	assert.Equal(t, []uint8{0x0F, 0x00}, m.Row(0))
	assert.Equal(t, []uint8{0xF0, 0x00}, m.Row(1))
	assert.Equal(t, []uint8{0x00, 0x0F}, m.Row(2))

	for i := range m.Prefix {
		for j := range cfg.RowLen {
			want := j >= i*cfg.OnesPerRow && j < (i+1)*cfg.OnesPerRow
			assert.Equal(t, want, m.Bit(i, j), "row %d col %d", i, j)
		}
	}
}

func TestGenerate_PrefixDoesNotShiftPermutedRows(t *testing.T) {
	cfg := Config{RowLen: 20, OnesPerRow: 5, Height: 3}
	plain, err := Generate[uint16](cfg, WithSeed(99))
	require.NoError(t, err)

	cfg.UnalteredInclude = true
	prefixed, err := Generate[uint16](cfg, WithSeed(99))
	require.NoError(t, err)

	require.Equal(t, plain.Rows+cfg.Ratio(), prefixed.Rows)
	for i := range plain.Rows {
		assert.Equal(t, plain.Row(i), prefixed.Row(prefixed.Prefix+i), "row %d", i)
	}
}

func TestGenerate_ScriptedSource(t *testing.T) {
	// Base block for 6/3 is [1 1 1 0 0 0 | 0 0 0 1 1 1]. With every draw 0 the
	// cursor always swaps with index 0:
	//   row 0 indices [2 1 3 4 5 6 ...] -> cells 1 1 0 0 0 0
	//   row 1 indices [3 1 4 5 6 7 ...] -> cells 0 1 0 0 0 0
	src := testutil.NewScriptedSource(0)
	m, err := Generate[uint64](Config{RowLen: 6, OnesPerRow: 3}, WithSource(src))
	require.NoError(t, err)

	assert.Equal(t, []uint64{0b000011, 0b000010}, m.Words)
	// 12 cells -> 10 draws per row.
	assert.Equal(t, 20, src.Draws())
}

func TestGenerate_SourceAdvancesAcrossRows(t *testing.T) {
	// Reseeding per row would make every row identical.
	m, err := Generate[uint64](Config{RowLen: 64, OnesPerRow: 8, Height: 3}, WithSeed(3))
	require.NoError(t, err)

	distinct := map[uint64]struct{}{}
	for i := range m.Rows {
		distinct[m.Row(i)[0]] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1)
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := Config{RowLen: 48, OnesPerRow: 6, Height: 4}

	a, err := Generate[uint32](cfg)
	require.NoError(t, err)
	b, err := Generate[uint32](cfg, WithSeed(DefaultSeed))
	require.NoError(t, err)
	assert.Equal(t, a.Words, b.Words)

	c, err := Generate[uint32](cfg, WithSeed(12345))
	require.NoError(t, err)
	assert.NotEqual(t, a.Words, c.Words)
}

func TestGenerate_SourceFactory(t *testing.T) {
	cfg := Config{RowLen: 32, OnesPerRow: 4, Height: 2}
	factory := func(seed uint64) Source { return rand.NewPCG(seed, seed) }

	a, err := Generate[uint64](cfg, WithSourceFactory(factory), WithSeed(5))
	require.NoError(t, err)
	b, err := Generate[uint64](cfg, WithSource(rand.NewPCG(5, 5)))
	require.NoError(t, err)

	assert.Equal(t, a.Words, b.Words)
}

func TestGenerate_PaddingBitsStayZero(t *testing.T) {
	cfg := Config{RowLen: 10, OnesPerRow: 1, Height: 20, UnalteredInclude: true}
	m, err := Generate[uint8](cfg, WithSource(testutil.NewRNG(1)))
	require.NoError(t, err)

	require.Equal(t, 2, m.ItemsPerRow)
	for i := range m.Rows {
		assert.Zero(t, m.Row(i)[1]>>2, "row %d", i)
	}
}

func TestGenerate_FullBlockRowsAreAllOnes(t *testing.T) {
	// rat == 1: the base block is a single all-ones row, so every permutation of
	// it is all ones too.
	m, err := Generate[uint8](Config{RowLen: 8, OnesPerRow: 8, Height: 9})
	require.NoError(t, err)

	for i := range m.Rows {
		assert.Equal(t, 8, m.RowWeight(i))
	}
}

func TestGenerate_ConcreteScenario(t *testing.T) {
	cfg := Config{RowLen: 6, OnesPerRow: 3}
	require.Equal(t, 2, cfg.Ratio())
	require.Equal(t, 2, cfg.Rows())

	m, err := Generate[uint8](cfg)
	require.NoError(t, err)

	require.Equal(t, 2, m.Rows)
	require.Equal(t, 1, m.ItemsPerRow)
	for i := range m.Rows {
		w := m.RowWeight(i)
		assert.GreaterOrEqual(t, w, 0)
		assert.LessOrEqual(t, w, 6)
		assert.Zero(t, m.Row(i)[0]>>6)
	}

	mean, _ := Expected(cfg)
	assert.InDelta(t, 3.0, mean, 1e-12)
}

func TestGenerate_MeanRowWeightConverges(t *testing.T) {
	cfg := Config{RowLen: 64, OnesPerRow: 8, Height: 999}
	m, err := Generate[uint64](cfg)
	require.NoError(t, err)

	stats := m.Stats()
	mean, variance := Expected(cfg)

	require.Equal(t, 8000, stats.Rows)
	assert.InDelta(t, mean, stats.Mean, 0.3)
	assert.Greater(t, stats.Variance, 0.6*variance)
	assert.Less(t, stats.Variance, 1.4*variance)
}

func TestGenerate_RowsHaveExpectedNotExactWeight(t *testing.T) {
	m, err := Generate[uint64](Config{RowLen: 32, OnesPerRow: 4, Height: 200}, WithSeed(11))
	require.NoError(t, err)

	stats := m.Stats()
	assert.Less(t, stats.Min, 4)
	assert.Greater(t, stats.Max, 4)
}
