package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrideTestSnapshot() Snapshot {
	return Snapshot{
		Categories: []CategoryScores{
			{Name: "Clicking", Scenarios: []ScoreRecord{
				{ScenarioName: "Pasu", Score: 11122, RankMaxes: []int{100, 200}},
				{ScenarioName: "Popcorn", Score: 22233, RankMaxes: []int{100, 200}},
			}},
			{Name: "Tracking", Scenarios: []ScoreRecord{
				{ScenarioName: "PGT", Score: 33344, RankMaxes: []int{100, 200}},
			}},
		},
		Tiers: []RankTier{{Name: "Iron"}, {Name: "Bronze"}},
	}
}

// TestApplyOverrides verifies the replay contract: -1 keeps the stored
// scaled score, any other value v replaces it with round(v*100), matched
// in the snapshot's flattened category order.
func TestApplyOverrides(t *testing.T) {
	snap := overrideTestSnapshot()

	out := ApplyOverrides(snap, []float64{KeepScore, 150.555, 99})

	assert.Equal(t, 11122, out.Categories[0].Scenarios[0].Score)
	assert.Equal(t, 15056, out.Categories[0].Scenarios[1].Score)
	assert.Equal(t, 9900, out.Categories[1].Scenarios[0].Score)

	// The input snapshot is untouched.
	assert.Equal(t, 22233, snap.Categories[0].Scenarios[1].Score)
	assert.Equal(t, 33344, snap.Categories[1].Scenarios[0].Score)
}

// TestApplyOverrides_Lengths verifies that short override lists stop at
// their last entry and surplus entries are ignored.
func TestApplyOverrides_Lengths(t *testing.T) {
	t.Run("short list leaves the tail unchanged", func(t *testing.T) {
		out := ApplyOverrides(overrideTestSnapshot(), []float64{50})
		assert.Equal(t, 5000, out.Categories[0].Scenarios[0].Score)
		assert.Equal(t, 22233, out.Categories[0].Scenarios[1].Score)
		assert.Equal(t, 33344, out.Categories[1].Scenarios[0].Score)
	})

	t.Run("surplus overrides are ignored", func(t *testing.T) {
		out := ApplyOverrides(overrideTestSnapshot(), []float64{-1, -1, -1, 123, 456})
		assert.Equal(t, overrideTestSnapshot(), out)
	})

	t.Run("all keep sentinels round-trip the snapshot", func(t *testing.T) {
		out := ApplyOverrides(overrideTestSnapshot(), []float64{-1, -1, -1})
		assert.Equal(t, overrideTestSnapshot(), out)
	})
}

// TestSnapshot_Clone verifies deep independence of the copy, including
// the threshold ladders shared by reference in a shallow copy.
func TestSnapshot_Clone(t *testing.T) {
	snap := overrideTestSnapshot()
	clone := snap.Clone()

	clone.Categories[0].Scenarios[0].Score = 1
	clone.Categories[0].Scenarios[0].RankMaxes[0] = 999
	clone.Tiers[0].Name = "changed"

	assert.Equal(t, 11122, snap.Categories[0].Scenarios[0].Score)
	assert.Equal(t, 100, snap.Categories[0].Scenarios[0].RankMaxes[0])
	assert.Equal(t, "Iron", snap.Tiers[0].Name)
}

// TestSnapshot_TierName covers the rank-to-name mapping including the
// unranked and clamped cases.
func TestSnapshot_TierName(t *testing.T) {
	snap := overrideTestSnapshot()

	assert.Equal(t, "Unranked", snap.TierName(0))
	assert.Equal(t, "Iron", snap.TierName(1))
	assert.Equal(t, "Bronze", snap.TierName(2))
	assert.Equal(t, "Bronze", snap.TierName(9))

	empty := Snapshot{}
	assert.Equal(t, "Unranked", empty.TierName(3))
}

// TestScoreRecord_Value verifies the unscaling of the stored score.
func TestScoreRecord_Value(t *testing.T) {
	rec := ScoreRecord{Score: 15056}
	require.InDelta(t, 150.56, rec.Value(), 1e-9)
}
