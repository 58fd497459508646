package ldpc

import (
	"context"
	"time"

	"github.com/dnbaker/distance/internal/baseblock"
	"github.com/dnbaker/distance/internal/bitpack"
	"github.com/dnbaker/distance/internal/shuffle"
)

// Word is the set of unsigned integer types a Matrix can pack its bits into.
type Word = bitpack.Word

// Source yields the pseudo-random integers that drive row permutations.
type Source = shuffle.Source

// Generate builds a sketch matrix for cfg, packed into W words.
//
// Each of cfg.Rows() rows is the first RowLen cells of a fresh permutation of the
// flattened base block, so a row carries OnesPerRow ones on average (a hypergeometric
// draw), not exactly. One source is advanced across all rows and never reseeded.
//
// Invalid configurations are rejected with a *ConfigError before anything is
// allocated.
func Generate[W Word](cfg Config, opts ...Option) (*Matrix[W], error) {
	o := newOptions(opts)
	return generateObserved[W](context.Background(), cfg, o.sourceFor(), o, o.logger.WithConfig(cfg))
}

func generateObserved[W Word](ctx context.Context, cfg Config, src Source, o *options, logger *Logger) (*Matrix[W], error) {
	start := time.Now()
	m, err := generate[W](ctx, cfg, src, logger)
	duration := time.Since(start)

	var rows, words int
	if m != nil {
		rows, words = m.Rows, len(m.Words)
	}
	o.metricsCollector.RecordGenerate(rows, words, duration, err)
	logger.LogGenerate(ctx, rows, words, duration, err)
	return m, err
}

func generate[W Word](ctx context.Context, cfg Config, src Source, logger *Logger) (*Matrix[W], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := baseblock.Build(cfg.RowLen, cfg.OnesPerRow)
	if err != nil {
		return nil, translateError(cfg, err)
	}

	rat := cfg.Ratio()
	items := bitpack.ItemsPerRow[W](cfg.RowLen)
	logger.LogLayout(ctx, bitpack.BitsPerWord[W](), items)

	m := &Matrix[W]{
		Words:       make([]W, cfg.TotalRows()*items),
		RowLen:      cfg.RowLen,
		Rows:        cfg.TotalRows(),
		ItemsPerRow: items,
	}

	offset := 0
	if cfg.UnalteredInclude {
		for i := range rat {
			for j, v := range base.SubRow(i, cfg.RowLen) {
				bitpack.Or(m.Words, i*items, j, v)
			}
		}
		m.Prefix = rat
		offset = rat * items
	}

	idx := make([]int, len(base))
	shuffle.Identity(idx)

	for i := range cfg.Rows() {
		shuffle.Biased(idx, src)
		rowBase := offset + i*items
		for j := range cfg.RowLen {
			bitpack.Or(m.Words, rowBase, j, base[idx[j]])
		}
	}

	return m, nil
}
