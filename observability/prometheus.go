// Package observability exports ldpc metrics to Prometheus.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dnbaker/distance/ldpc"
)

const namespace = "ldpc"

// PrometheusCollector implements ldpc.MetricsCollector.
type PrometheusCollector struct {
	latency   *prometheus.HistogramVec
	generates *prometheus.CounterVec
	rows      prometheus.Counter
	words     prometheus.Counter
	trials    *prometheus.CounterVec
}

var _ ldpc.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collector and registers its metrics with
// reg. A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of generation operations",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"op", "status"}),
		generates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generate_total",
			Help:      "Total matrix generations",
		}, []string{"status"}),
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_generated_total",
			Help:      "Total rows emitted, including unaltered prefix rows",
		}),
		words: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "words_allocated_total",
			Help:      "Total packed words allocated for matrices",
		}),
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Total trials run by GenerateTrials",
		}, []string{"status"}),
	}

	for _, col := range []prometheus.Collector{c.latency, c.generates, c.rows, c.words, c.trials} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNewPrometheusCollector is like NewPrometheusCollector but panics on
// registration errors.
func MustNewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c, err := NewPrometheusCollector(reg)
	if err != nil {
		panic(err)
	}
	return c
}

func status(failed bool) string {
	if failed {
		return "error"
	}
	return "success"
}

func (c *PrometheusCollector) RecordGenerate(rows, words int, d time.Duration, err error) {
	s := status(err != nil)
	c.latency.WithLabelValues("generate", s).Observe(d.Seconds())
	c.generates.WithLabelValues(s).Inc()
	c.rows.Add(float64(rows))
	c.words.Add(float64(words))
}

func (c *PrometheusCollector) RecordTrials(count, failed int, d time.Duration) {
	c.latency.WithLabelValues("trials", status(failed > 0)).Observe(d.Seconds())
	c.trials.WithLabelValues("success").Add(float64(count - failed))
	c.trials.WithLabelValues("error").Add(float64(failed))
}
