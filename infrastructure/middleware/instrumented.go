package middleware

import (
	"time"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

// InstrumentedEvaluator wraps an Evaluator with metrics collection:
// per-evaluation latency, an outcome counter, and the last rank
// produced per benchmark tier.
type InstrumentedEvaluator struct {
	next    ports.Evaluator
	metrics ports.MetricsCollector
}

var _ ports.Evaluator = (*InstrumentedEvaluator)(nil)

// NewInstrumentedEvaluator wraps next with metrics collection. A nil
// collector returns next unwrapped.
func NewInstrumentedEvaluator(next ports.Evaluator, metrics ports.MetricsCollector) ports.Evaluator {
	if metrics == nil {
		return next
	}
	return &InstrumentedEvaluator{next: next, metrics: metrics}
}

// Evaluate delegates to the wrapped evaluator and records the outcome.
func (e *InstrumentedEvaluator) Evaluate(snap domain.Snapshot, bench domain.Benchmark, difficulty string) domain.OverallRankResult {
	start := time.Now()
	result := e.next.Evaluate(snap, bench, difficulty)

	labels := map[string]string{
		"benchmark":  bench.Name,
		"difficulty": difficulty,
		"outcome":    outcomeLabel(result),
	}
	e.metrics.RecordLatency("evaluate", time.Since(start), labels)
	e.metrics.RecordCounter(MetricEvaluationsTotal, 1, labels)
	e.metrics.RecordGauge(MetricLastRank, float64(result.Rank), labels)

	return result
}

// outcomeLabel classifies a result for the evaluations counter.
func outcomeLabel(result domain.OverallRankResult) string {
	switch {
	case result.RankName == "No data":
		return "no_data"
	case result.FallbackUsed:
		return "fallback"
	case result.UsedComplete:
		return "complete"
	default:
		return "strategy"
	}
}
