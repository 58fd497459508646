package ldpc

import (
	"runtime"

	"github.com/seehuhn/mt19937"
)

// DefaultSeed seeds the default source. It is the default seed of the 64-bit
// Mersenne Twister, so unseeded output matches the reference construction.
const DefaultSeed uint64 = 5489

type options struct {
	source           Source
	seed             uint64
	newSource        func(seed uint64) Source
	logger           *Logger
	metricsCollector MetricsCollector
	concurrency      int
}

// Option configures Generate and GenerateTrials.
type Option func(*options)

// WithSource makes Generate draw from src instead of a freshly seeded default source.
//
// The caller owns src. It is advanced by every row and must not be shared with
// concurrent Generate calls. GenerateTrials ignores it and seeds one source per
// trial via the source factory.
func WithSource(src Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithSeed seeds the default source used by Generate.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithSourceFactory replaces the constructor used for seeded sources
// (Generate without WithSource, and every GenerateTrials trial).
//
// If nil is passed, the Mersenne Twister factory is used.
func WithSourceFactory(fn func(seed uint64) Source) Option {
	return func(o *options) {
		if fn == nil {
			fn = NewMT19937
		}
		o.newSource = fn
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures operational metrics collection.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithConcurrency bounds the number of trials GenerateTrials runs at once.
// Values <= 0 select GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		seed:             DefaultSeed,
		newSource:        NewMT19937,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}

// sourceFor returns the source a single Generate call should own.
func (o *options) sourceFor() Source {
	if o.source != nil {
		return o.source
	}
	return o.newSource(o.seed)
}

// NewMT19937 returns a 64-bit Mersenne Twister seeded with seed.
func NewMT19937(seed uint64) Source {
	mt := mt19937.New()
	mt.Seed(int64(seed))
	return mt
}
