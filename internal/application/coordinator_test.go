package application

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsavage/benchrank/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// noviceBench declares one novice tier with a two-slot Dynamic
// subcategory and a one-slot Static subcategory.
func noviceBench(method string) domain.Benchmark {
	return domain.Benchmark{
		Name:   "Season Test",
		Method: method,
		Difficulties: []domain.Difficulty{
			{
				Name: "Novice",
				Categories: []domain.SchemaCategory{
					{
						Name: "Clicking",
						Subcategories: []domain.Subcategory{
							{Name: "Dynamic", Scenarios: 2},
							{Name: "Static", Scenarios: 1},
						},
					},
				},
			},
		},
	}
}

func noviceTiers() []domain.RankTier {
	return []domain.RankTier{
		{Name: "Iron", Color: "#71695d"},
		{Name: "Bronze", Color: "#a77044"},
		{Name: "Silver", Color: "#c0c0c0"},
		{Name: "Gold", Color: "#ffd700"},
	}
}

func noviceSnapshot(scores ...float64) domain.Snapshot {
	ladder := []int{100, 200, 300, 400}
	cat := domain.CategoryScores{Name: "Clicking"}
	for i, score := range scores {
		cat.Scenarios = append(cat.Scenarios, record(
			[]string{"dyn1", "dyn2", "stat"}[i], score, ladder...))
	}
	return domain.Snapshot{
		Categories: []domain.CategoryScores{cat},
		Tiers:      noviceTiers(),
	}
}

// TestCoordinator_StrategyWins verifies the arbitration when the
// aggregation strategy outranks the complete-rank baseline: one weak
// scenario holds the complete rank down, but only each subcategory's
// best scenario feeds the harmonic mean.
func TestCoordinator_StrategyWins(t *testing.T) {
	c := NewCoordinator(NewStrategyRegistry(), testLogger())

	result := c.Evaluate(noviceSnapshot(250, 150, 250), noviceBench("energy_harmonic"), "Novice")

	assert.Equal(t, 2, result.Rank)
	assert.Equal(t, "Bronze", result.RankName)
	assert.False(t, result.UsedComplete)
	assert.False(t, result.FallbackUsed)

	mean, ok := domain.Detail(result.Details, domain.DetailHarmonicMean)
	require.True(t, ok)
	assert.InDelta(t, 250, mean, 1e-9)

	progress, ok := domain.Detail(result.Details, domain.DetailProgress)
	require.True(t, ok)
	assert.InDelta(t, 0.5, progress, 1e-9)

	id, ok := domain.Detail(result.Details, domain.DetailEvaluationID)
	require.True(t, ok)
	assert.NotEmpty(t, id)
}

// TestCoordinator_CompleteWinsTies verifies that the baseline wins ties
// and strips the strategy's detail payload.
func TestCoordinator_CompleteWinsTies(t *testing.T) {
	c := NewCoordinator(NewStrategyRegistry(), testLogger())

	// Every scenario topped out: strategy and baseline both land on
	// the final rank.
	result := c.Evaluate(noviceSnapshot(500, 500, 500), noviceBench("energy_harmonic"), "Novice")

	assert.Equal(t, 4, result.Rank)
	assert.Equal(t, "Gold Complete", result.RankName)
	assert.True(t, result.UsedComplete)
	assert.False(t, result.FallbackUsed)

	// Only the evaluation id survives on the baseline branch.
	assert.Equal(t, 1, result.Details.Len())
	id, ok := domain.Detail(result.Details, domain.DetailEvaluationID)
	require.True(t, ok)
	assert.NotEmpty(t, id)
}

// TestCoordinator_AllUnranked verifies that a snapshot with no ranked
// scenario resolves to the unranked baseline rather than an error.
func TestCoordinator_AllUnranked(t *testing.T) {
	c := NewCoordinator(NewStrategyRegistry(), testLogger())

	result := c.Evaluate(noviceSnapshot(50, 50, 50), noviceBench("energy_harmonic"), "Novice")

	assert.Zero(t, result.Rank)
	assert.Equal(t, "Unranked", result.RankName)
	assert.True(t, result.UsedComplete)
}

// TestCoordinator_FallbackOnUnregisteredMethod verifies the complete
// rank stands in for an unknown scoring method, flagged as a fallback.
func TestCoordinator_FallbackOnUnregisteredMethod(t *testing.T) {
	c := NewCoordinator(NewStrategyRegistry(), testLogger())

	result := c.Evaluate(noviceSnapshot(250, 250, 250), noviceBench("mystery_method"), "Novice")

	assert.Equal(t, 2, result.Rank)
	assert.Equal(t, "Bronze Complete", result.RankName)
	assert.True(t, result.UsedComplete)
	assert.True(t, result.FallbackUsed)
}

// TestCoordinator_NoData verifies every malformed-input path resolves
// to the no-data result instead of an error.
func TestCoordinator_NoData(t *testing.T) {
	c := NewCoordinator(NewStrategyRegistry(), testLogger())
	bench := noviceBench("energy_harmonic")

	t.Run("empty snapshot", func(t *testing.T) {
		result := c.Evaluate(domain.Snapshot{}, bench, "Novice")
		assert.Equal(t, domain.NoDataResult(), result)
	})

	t.Run("snapshot without tier metadata", func(t *testing.T) {
		snap := noviceSnapshot(250, 250, 250)
		snap.Tiers = nil
		result := c.Evaluate(snap, bench, "Novice")
		assert.Equal(t, "No data", result.RankName)
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		result := c.Evaluate(noviceSnapshot(250, 250, 250), bench, "Nightmare")
		assert.Equal(t, "No data", result.RankName)
		assert.Zero(t, result.Rank)
	})

	t.Run("snapshot wider than the schema", func(t *testing.T) {
		snap := noviceSnapshot(250, 250, 250)
		snap.Categories = append(snap.Categories, domain.CategoryScores{Name: "Tracking"})
		result := c.Evaluate(snap, bench, "Novice")
		assert.Equal(t, "No data", result.RankName)
	})
}

// TestCoordinator_ShortSnapshotUsesPlaceholders verifies that a score
// source running short of scenarios still evaluates, with the missing
// slot holding the complete rank at zero.
func TestCoordinator_ShortSnapshotUsesPlaceholders(t *testing.T) {
	c := NewCoordinator(NewStrategyRegistry(), testLogger())

	result := c.Evaluate(noviceSnapshot(250, 250), noviceBench("energy_harmonic"), "Novice")

	// The empty Static slot zeroes its subcategory's energy, so the
	// harmonic mean collapses and the baseline (also zero) wins.
	assert.Zero(t, result.Rank)
	assert.Equal(t, "Unranked", result.RankName)
	assert.True(t, result.UsedComplete)
}
