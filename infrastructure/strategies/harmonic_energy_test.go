package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsavage/benchrank/internal/domain"
)

func harmonicConfig() HarmonicEnergyConfig {
	return HarmonicEnergyConfig{
		Thresholds:      []float64{100, 200, 300},
		FakeLowerOffset: 100,
		FakeUpperCount:  1,
	}
}

// TestHarmonicEnergyStrategy_Evaluate verifies the reference case: two
// subcategories at energy 150 each give a harmonic mean of exactly
// 150.0, which maps to rank 1 half way to rank 2.
func TestHarmonicEnergyStrategy_Evaluate(t *testing.T) {
	s, err := NewHarmonicEnergyStrategy("harmonic", harmonicConfig())
	require.NoError(t, err)

	in := evalInput(
		subcat("Clicking", "Dynamic", scenario("Pasu", 150, 100, 200, 300)),
		subcat("Clicking", "Static", scenario("TwTzS", 150, 100, 200, 300)),
	)

	result, err := s.Evaluate(in)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Rank)

	mean, ok := domain.Detail(result.Details, domain.DetailHarmonicMean)
	require.True(t, ok)
	assert.Equal(t, 150.0, mean)

	progress, ok := domain.Detail(result.Details, domain.DetailProgress)
	require.True(t, ok)
	assert.InDelta(t, 0.5, progress, 1e-9)

	energies, ok := domain.Detail(result.Details, domain.DetailEnergies)
	require.True(t, ok)
	require.Len(t, energies, 2)
	assert.Equal(t, 150, energies[0].Energy)
	assert.Equal(t, 150, energies[1].Energy)
}

// TestHarmonicEnergyStrategy_ExactCoverage verifies the missing-data
// semantics: one uncovered subcategory zeroes the mean instead of
// shrinking the denominator.
func TestHarmonicEnergyStrategy_ExactCoverage(t *testing.T) {
	s, err := NewHarmonicEnergyStrategy("harmonic", harmonicConfig())
	require.NoError(t, err)

	in := evalInput(
		subcat("Clicking", "Dynamic", scenario("Pasu", 250, 100, 200, 300)),
		subcat("Clicking", "Static", domain.AlignedScenario{Name: "Unknown_Scenario_Clicking_Static_0", Placeholder: true}),
	)

	result, err := s.Evaluate(in)
	require.NoError(t, err)

	assert.Zero(t, result.Rank)
	mean, ok := domain.Detail(result.Details, domain.DetailHarmonicMean)
	require.True(t, ok)
	assert.Zero(t, mean)
}

// TestHarmonicEnergyStrategy_EqualEnergies verifies the harmonic-mean
// identity: N equal energies e average to exactly e.
func TestHarmonicEnergyStrategy_EqualEnergies(t *testing.T) {
	s, err := NewHarmonicEnergyStrategy("harmonic", harmonicConfig())
	require.NoError(t, err)

	in := evalInput(
		subcat("A", "a", scenario("s1", 230, 100, 200, 300)),
		subcat("B", "b", scenario("s2", 230, 100, 200, 300)),
		subcat("C", "c", scenario("s3", 230, 100, 200, 300)),
	)

	result, err := s.Evaluate(in)
	require.NoError(t, err)

	mean, _ := domain.Detail(result.Details, domain.DetailHarmonicMean)
	assert.Equal(t, 230.0, mean)
	assert.Equal(t, 2, result.Rank)
}

// TestHarmonicEnergyStrategy_BestScenarioSelection verifies the
// tie-break order inside a subcategory: precise rank, then energy, then
// sub-rank progress.
func TestHarmonicEnergyStrategy_BestScenarioSelection(t *testing.T) {
	s, err := NewHarmonicEnergyStrategy("harmonic", harmonicConfig())
	require.NoError(t, err)

	t.Run("higher precise rank wins", func(t *testing.T) {
		in := evalInput(subcat("A", "a",
			scenario("weak", 150, 100, 200, 300),
			scenario("strong", 250, 100, 200, 300),
		))
		result, err := s.Evaluate(in)
		require.NoError(t, err)
		energies, _ := domain.Detail(result.Details, domain.DetailEnergies)
		require.Len(t, energies, 1)
		assert.Equal(t, "strong", energies[0].Scenario)
		assert.Equal(t, 250, energies[0].Energy)
	})

	t.Run("both unranked falls back to sub-rank progress", func(t *testing.T) {
		in := evalInput(subcat("A", "a",
			scenario("closer", 80, 100, 200, 300),
			scenario("farther", 20, 100, 200, 300),
		))
		result, err := s.Evaluate(in)
		require.NoError(t, err)
		energies, _ := domain.Detail(result.Details, domain.DetailEnergies)
		require.Len(t, energies, 1)
		assert.Equal(t, "closer", energies[0].Scenario)
	})
}

// TestHarmonicEnergyStrategy_ClampAndOffset covers the advanced-tier
// energy clamp and the pooled-ladder rank offset.
func TestHarmonicEnergyStrategy_ClampAndOffset(t *testing.T) {
	t.Run("clamp caps super-rank energy at the top threshold", func(t *testing.T) {
		cfg := harmonicConfig()
		cfg.ClampEnergy = 300
		s, err := NewHarmonicEnergyStrategy("harmonic", cfg)
		require.NoError(t, err)

		in := evalInput(
			subcat("A", "a", scenario("s1", 380, 100, 200, 300)),
			subcat("B", "b", scenario("s2", 300, 100, 200, 300)),
		)
		result, err := s.Evaluate(in)
		require.NoError(t, err)

		energies, _ := domain.Detail(result.Details, domain.DetailEnergies)
		assert.Equal(t, 300, energies[0].Energy)
		mean, _ := domain.Detail(result.Details, domain.DetailHarmonicMean)
		assert.Equal(t, 300.0, mean)
	})

	t.Run("rank offset shifts into the global tier list", func(t *testing.T) {
		cfg := harmonicConfig()
		cfg.RankOffset = 8
		s, err := NewHarmonicEnergyStrategy("harmonic", cfg)
		require.NoError(t, err)

		in := evalInput(subcat("A", "a", scenario("s1", 250, 100, 200, 300)))
		result, err := s.Evaluate(in)
		require.NoError(t, err)
		assert.Equal(t, 10, result.Rank)
	})

	t.Run("rank offset never promotes an unranked result", func(t *testing.T) {
		cfg := harmonicConfig()
		cfg.RankOffset = 8
		s, err := NewHarmonicEnergyStrategy("harmonic", cfg)
		require.NoError(t, err)

		result, err := s.Evaluate(evalInput(subcat("A", "a",
			domain.AlignedScenario{Name: "Unknown_Scenario_A_a_0", Placeholder: true})))
		require.NoError(t, err)
		assert.Zero(t, result.Rank)
	})
}

// TestHarmonicEnergyStrategy_SubcategoryFilter verifies that a filter
// restricts both aggregation and the coverage requirement.
func TestHarmonicEnergyStrategy_SubcategoryFilter(t *testing.T) {
	cfg := harmonicConfig()
	cfg.SubcategoryFilter = []string{"dynamic"}
	s, err := NewHarmonicEnergyStrategy("harmonic", cfg)
	require.NoError(t, err)

	in := evalInput(
		subcat("Clicking", "Dynamic", scenario("Pasu", 150, 100, 200, 300)),
		subcat("Clicking", "Static", domain.AlignedScenario{Name: "Unknown_Scenario_Clicking_Static_0", Placeholder: true}),
	)

	result, err := s.Evaluate(in)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Rank)
	energies, _ := domain.Detail(result.Details, domain.DetailEnergies)
	require.Len(t, energies, 1)
	assert.Equal(t, "Dynamic", energies[0].Subcategory)
}

// TestHarmonicEnergyStrategy_Construction covers constructor and
// parameter validation failures.
func TestHarmonicEnergyStrategy_Construction(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := NewHarmonicEnergyStrategy("", harmonicConfig())
		assert.ErrorIs(t, err, ErrEmptyStrategyName)
	})

	t.Run("missing thresholds", func(t *testing.T) {
		_, err := NewHarmonicEnergyStrategy("harmonic", HarmonicEnergyConfig{})
		assert.Error(t, err)
	})

	t.Run("from config map with defaults", func(t *testing.T) {
		s, err := NewHarmonicEnergyFromConfig("harmonic", map[string]any{
			"thresholds": []float64{100, 200},
		})
		require.NoError(t, err)
		require.NoError(t, s.Validate())
	})

	t.Run("empty evaluation input is unranked", func(t *testing.T) {
		s, err := NewHarmonicEnergyStrategy("harmonic", harmonicConfig())
		require.NoError(t, err)
		result, err := s.Evaluate(evalInput())
		require.NoError(t, err)
		assert.Zero(t, result.Rank)
	})
}
