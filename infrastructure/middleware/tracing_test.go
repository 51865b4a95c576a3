package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsavage/benchrank/internal/domain"
)

// TestTracingEvaluator_Passthrough verifies the span wrapper returns
// the delegate's result untouched. The global tracer provider defaults
// to a no-op, so no exporter is needed.
func TestTracingEvaluator_Passthrough(t *testing.T) {
	want := domain.OverallRankResult{Rank: 2, RankName: "Bronze", UsedComplete: true}
	ev := NewTracingEvaluator(fixedEvaluator(want))

	got := ev.Evaluate(domain.Snapshot{}, domain.Benchmark{Name: "Season Test"}, "Novice")
	assert.Equal(t, want, got)
}
