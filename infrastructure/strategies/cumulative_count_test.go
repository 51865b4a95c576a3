package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsavage/benchrank/internal/domain"
)

// TestCumulativeCountStrategy_Evaluate verifies the reference case: with
// four scenarios required per rank, four scenarios at rank 3 plus two at
// rank 4 give an overall rank of 3 (cumulative count 6) with progress
// 0.5 toward rank 4.
func TestCumulativeCountStrategy_Evaluate(t *testing.T) {
	s, err := NewCumulativeCountStrategy("rank_count", CumulativeCountConfig{RequiredCount: 4})
	require.NoError(t, err)

	ladder := []int{100, 200, 300, 400}
	in := evalInput(subcat("A", "a",
		scenario("s1", 300, ladder...),
		scenario("s2", 310, ladder...),
		scenario("s3", 320, ladder...),
		scenario("s4", 350, ladder...),
		scenario("s5", 400, ladder...),
		scenario("s6", 450, ladder...),
	))

	result, err := s.Evaluate(in)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Rank)

	progress, ok := domain.Detail(result.Details, domain.DetailProgress)
	require.True(t, ok)
	assert.InDelta(t, 0.5, progress, 1e-9)

	counts, ok := domain.Detail(result.Details, domain.DetailRankCounts)
	require.True(t, ok)
	assert.Equal(t, []int{6, 6, 6, 2}, counts)
}

// TestCumulativeCountStrategy_Edges covers the unranked, topped-out, and
// empty-input boundaries.
func TestCumulativeCountStrategy_Edges(t *testing.T) {
	ladder := []int{100, 200}

	t.Run("not enough scenarios at any rank", func(t *testing.T) {
		s, err := NewCumulativeCountStrategy("rank_count", CumulativeCountConfig{RequiredCount: 4})
		require.NoError(t, err)

		result, err := s.Evaluate(evalInput(subcat("A", "a",
			scenario("s1", 150, ladder...),
			scenario("s2", 150, ladder...),
		)))
		require.NoError(t, err)

		assert.Zero(t, result.Rank)
		progress, _ := domain.Detail(result.Details, domain.DetailProgress)
		assert.InDelta(t, 0.5, progress, 1e-9)
	})

	t.Run("every scenario at the top rank", func(t *testing.T) {
		s, err := NewCumulativeCountStrategy("rank_count", CumulativeCountConfig{RequiredCount: 2})
		require.NoError(t, err)

		result, err := s.Evaluate(evalInput(subcat("A", "a",
			scenario("s1", 250, ladder...),
			scenario("s2", 250, ladder...),
		)))
		require.NoError(t, err)

		assert.Equal(t, 2, result.Rank)
		maxed, _ := domain.Detail(result.Details, domain.DetailMaxedScenarios)
		assert.Equal(t, 2, maxed)
	})

	t.Run("no ladders at all", func(t *testing.T) {
		s, err := NewCumulativeCountStrategy("rank_count", CumulativeCountConfig{RequiredCount: 1})
		require.NoError(t, err)

		result, err := s.Evaluate(evalInput(subcat("A", "a",
			domain.AlignedScenario{Name: "Unknown_Scenario_A_a_0", Placeholder: true},
		)))
		require.NoError(t, err)
		assert.Zero(t, result.Rank)
	})

	t.Run("required count must be positive", func(t *testing.T) {
		_, err := NewCumulativeCountStrategy("rank_count", CumulativeCountConfig{})
		assert.Error(t, err)
	})
}
