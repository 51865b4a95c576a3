package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

// tracerName identifies this instrumentation library in exported spans.
const tracerName = "benchrank/evaluator"

// TracingEvaluator wraps an Evaluator with OpenTelemetry spans carrying
// the benchmark, difficulty, and outcome of each evaluation. Evaluation
// is synchronous pure computation, so each span covers exactly one
// Evaluate call.
type TracingEvaluator struct {
	next   ports.Evaluator
	tracer trace.Tracer
}

var _ ports.Evaluator = (*TracingEvaluator)(nil)

// NewTracingEvaluator wraps next with tracing against the globally
// registered tracer provider.
func NewTracingEvaluator(next ports.Evaluator) *TracingEvaluator {
	return &TracingEvaluator{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

// Evaluate delegates to the wrapped evaluator inside a span.
func (e *TracingEvaluator) Evaluate(snap domain.Snapshot, bench domain.Benchmark, difficulty string) domain.OverallRankResult {
	_, span := e.tracer.Start(context.Background(), "Evaluator.Evaluate",
		trace.WithAttributes(
			attribute.String("benchmark.name", bench.Name),
			attribute.String("benchmark.method", bench.Method),
			attribute.String("benchmark.difficulty", difficulty),
		))
	defer span.End()

	result := e.next.Evaluate(snap, bench, difficulty)

	span.SetAttributes(
		attribute.Int("result.rank", result.Rank),
		attribute.String("result.rank_name", result.RankName),
		attribute.Bool("result.used_complete", result.UsedComplete),
		attribute.Bool("result.fallback_used", result.FallbackUsed),
	)
	return result
}
