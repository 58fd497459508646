package ldpc

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// GenerateTrials generates one matrix per seed, running up to WithConcurrency
// generations at once.
//
// Every trial owns a source built by the source factory from its seed, so the
// result for seeds[i] equals Generate with WithSeed(seeds[i]). WithSource is ignored.
// The first failure (or ctx cancellation) cancels the remaining trials and no
// partial result is returned.
func GenerateTrials[W Word](ctx context.Context, cfg Config, seeds []uint64, opts ...Option) ([]*Matrix[W], error) {
	o := newOptions(opts)
	logger := o.logger.WithConfig(cfg)

	start := time.Now()
	if err := cfg.Validate(); err != nil {
		o.metricsCollector.RecordTrials(len(seeds), len(seeds), time.Since(start))
		logger.LogTrials(ctx, len(seeds), len(seeds), err)
		return nil, err
	}

	out := make([]*Matrix[W], len(seeds))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, seed := range seeds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := generateObserved[W](gctx, cfg, o.newSource(seed), o, logger.WithSeed(seed))
			if err != nil {
				return err
			}
			out[i] = m
			done.Add(1)
			return nil
		})
	}

	err := g.Wait()
	failed := len(seeds) - int(done.Load())
	o.metricsCollector.RecordTrials(len(seeds), failed, time.Since(start))
	logger.LogTrials(ctx, len(seeds), failed, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
