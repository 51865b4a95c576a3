// Package middleware provides cross-cutting concerns around the
// evaluation engine: metrics collection and tracing wrappers that
// compose over the Evaluator interface without touching scoring logic.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rsavage/benchrank/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// Metric names understood by RecordCounter and RecordGauge. Callers use
// these as the metric argument; unknown names fall through to the
// generic operation counter.
const (
	MetricEvaluationsTotal = "rank_evaluations_total"
	MetricLastRank         = "rank_evaluation_last_rank"
)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It tracks evaluation throughput, latency, and the last
// rank produced per benchmark tier.
type PrometheusMetrics struct {
	evaluationsTotal *prometheus.CounterVec
	executionLatency *prometheus.HistogramVec
	lastRank         *prometheus.GaugeVec
	operationCounter *prometheus.CounterVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and
// registers its metrics with the given registerer. A nil registerer
// uses the global default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		evaluationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricEvaluationsTotal,
				Help: "Total number of rank evaluations by outcome.",
			},
			[]string{"benchmark", "difficulty", "outcome"},
		),
		executionLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rank_evaluation_duration_seconds",
				Help:    "Execution time of rank evaluations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "benchmark"},
		),
		lastRank: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: MetricLastRank,
				Help: "Rank produced by the most recent evaluation per tier.",
			},
			[]string{"benchmark", "difficulty"},
		),
		operationCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rank_engine_operations_total",
				Help: "Total number of engine operations by status.",
			},
			[]string{"operation", "status"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(operation string, duration time.Duration, labels map[string]string) {
	pm.executionLatency.WithLabelValues(operation, labels["benchmark"]).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by
// incrementing Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(metric string, value float64, labels map[string]string) {
	switch metric {
	case MetricEvaluationsTotal:
		pm.evaluationsTotal.WithLabelValues(
			labels["benchmark"],
			labels["difficulty"],
			labels["outcome"],
		).Add(value)
	default:
		pm.operationCounter.WithLabelValues(metric, labels["status"]).Add(value)
	}
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauges.
func (pm *PrometheusMetrics) RecordGauge(metric string, value float64, labels map[string]string) {
	switch metric {
	case MetricLastRank:
		pm.lastRank.WithLabelValues(labels["benchmark"], labels["difficulty"]).Set(value)
	default:
		// Unknown gauges are dropped rather than registered ad hoc;
		// a fixed metric surface keeps dashboards stable.
	}
}
