package ldpc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see package
// observability for a Prometheus implementation.
type MetricsCollector interface {
	// RecordGenerate is called after each matrix generation.
	// rows and words describe the returned matrix (zero on failure),
	// err is nil if successful.
	RecordGenerate(rows, words int, duration time.Duration, err error)

	// RecordTrials is called after each GenerateTrials batch.
	// count is the number of trials attempted, failed the number that did not
	// produce a matrix.
	RecordTrials(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordTrials(int, int, time.Duration)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GenerateCount      atomic.Int64
	GenerateErrors     atomic.Int64
	GenerateTotalNanos atomic.Int64
	RowsGenerated      atomic.Int64
	WordsAllocated     atomic.Int64
	TrialBatches       atomic.Int64
	TrialCount         atomic.Int64
	TrialFailed        atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(rows, words int, duration time.Duration, err error) {
	b.GenerateCount.Add(1)
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GenerateErrors.Add(1)
		return
	}
	b.RowsGenerated.Add(int64(rows))
	b.WordsAllocated.Add(int64(words))
}

// RecordTrials implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrials(count, failed int, duration time.Duration) {
	b.TrialBatches.Add(1)
	b.TrialCount.Add(int64(count))
	b.TrialFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GenerateCount:    b.GenerateCount.Load(),
		GenerateErrors:   b.GenerateErrors.Load(),
		GenerateAvgNanos: b.getAvgGenerateNanos(),
		RowsGenerated:    b.RowsGenerated.Load(),
		WordsAllocated:   b.WordsAllocated.Load(),
		TrialBatches:     b.TrialBatches.Load(),
		TrialCount:       b.TrialCount.Load(),
		TrialFailed:      b.TrialFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgGenerateNanos() int64 {
	count := b.GenerateCount.Load()
	if count == 0 {
		return 0
	}
	return b.GenerateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	GenerateCount    int64
	GenerateErrors   int64
	GenerateAvgNanos int64
	RowsGenerated    int64
	WordsAllocated   int64
	TrialBatches     int64
	TrialCount       int64
	TrialFailed      int64
}
