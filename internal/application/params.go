package application

import (
	"fmt"
	"strings"

	"github.com/rsavage/benchrank/infrastructure/strategies"
	"github.com/rsavage/benchrank/internal/ports"
)

// methodParams carries the per-difficulty parameters behind one
// built-in scoring method. Threshold ladders are keyed by lowercase
// difficulty name; the empty key applies to every tier.
type methodParams struct {
	thresholds     map[string][]float64
	plusThresholds map[string][]float64

	// pooled is a single global ladder shared by every tier; each tier
	// scores against its ranksPerTier-wide slice and shifts the mapped
	// rank by the slice offset.
	pooled       []float64
	ranksPerTier int

	fakeLowerOffset float64
	fakeUpperCount  int

	// clampAdvanced caps subcategory energies at the tier's top
	// threshold on the "advanced" tier, where the extrapolated climb
	// past the final rank would otherwise inflate the harmonic mean.
	clampAdvanced bool

	requiredCount   int
	rankPoints      []float64
	positionWeights []float64
	pointThresholds []float64
	rankWeights     []float64
	topN            int
	minMaxed        int
}

// ladder resolves the threshold ladder for a difficulty name.
func (p methodParams) ladder(difficulty string, table map[string][]float64) ([]float64, error) {
	if ladder, ok := table[strings.ToLower(difficulty)]; ok {
		return ladder, nil
	}
	if ladder, ok := table[""]; ok {
		return ladder, nil
	}
	return nil, fmt.Errorf("no threshold ladder for difficulty %q", difficulty)
}

// harmonicConfig assembles the energy-scale config for one tier,
// handling pooled-ladder slicing and the advanced-tier clamp.
func (p methodParams) harmonicConfig(difficulty string, tierIndex int, table map[string][]float64) (strategies.HarmonicEnergyConfig, error) {
	cfg := strategies.DefaultHarmonicEnergyConfig()
	if p.fakeLowerOffset > 0 {
		cfg.FakeLowerOffset = p.fakeLowerOffset
	}
	if p.fakeUpperCount > 0 {
		cfg.FakeUpperCount = p.fakeUpperCount
	}

	if len(p.pooled) > 0 {
		start := tierIndex * p.ranksPerTier
		if start < 0 || start+p.ranksPerTier > len(p.pooled) {
			return cfg, fmt.Errorf("tier %d exceeds the pooled ladder of %d ranks", tierIndex, len(p.pooled))
		}
		cfg.Thresholds = p.pooled[start : start+p.ranksPerTier]
		cfg.RankOffset = start
	} else {
		ladder, err := p.ladder(difficulty, table)
		if err != nil {
			return cfg, err
		}
		cfg.Thresholds = ladder
	}

	if p.clampAdvanced && strings.EqualFold(difficulty, "advanced") {
		cfg.ClampEnergy = cfg.Thresholds[len(cfg.Thresholds)-1]
	}
	return cfg, nil
}

// Built-in parameter tables. The energy ladders follow the season
// convention of a shared 100-wide rank spacing: each tier's four ranks
// occupy a contiguous band of the same global scale, so a pooled
// benchmark can slice one ladder where a per-tier benchmark declares
// three.
var builtinParams = map[string]methodParams{
	"energy_harmonic": {
		thresholds: map[string][]float64{
			"novice":       {100, 200, 300, 400},
			"intermediate": {500, 600, 700, 800},
			"advanced":     {900, 1000, 1100, 1200},
		},
		fakeLowerOffset: 100,
		fakeUpperCount:  1,
		clampAdvanced:   true,
	},
	"energy_harmonic_plus": {
		thresholds: map[string][]float64{
			"novice":       {100, 200, 300, 400},
			"intermediate": {500, 600, 700, 800},
			"advanced":     {900, 1000, 1100, 1200},
		},
		// The plus ladder extends each tier by one extra step, so the
		// max-of composition only diverges past the normal ceiling.
		plusThresholds: map[string][]float64{
			"novice":       {100, 200, 300, 400, 500},
			"intermediate": {500, 600, 700, 800, 900},
			"advanced":     {900, 1000, 1100, 1200, 1300},
		},
		fakeLowerOffset: 100,
		fakeUpperCount:  1,
	},
	"energy_harmonic_singularity": {
		thresholds: map[string][]float64{
			"novice":       {100, 200, 300, 400},
			"intermediate": {500, 600, 700, 800},
			"advanced":     {900, 1000, 1100, 1200},
		},
		fakeLowerOffset: 100,
		fakeUpperCount:  1,
		minMaxed:        4,
	},
	"energy_harmonic_pooled": {
		pooled:          []float64{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 1100, 1200},
		ranksPerTier:    4,
		fakeLowerOffset: 100,
		fakeUpperCount:  1,
	},
	"rank_count": {
		requiredCount: 4,
	},
	"point_total": {
		rankPoints:      []float64{10, 25, 50, 100},
		positionWeights: []float64{1, 0.5},
		pointThresholds: []float64{60, 120, 240, 480},
	},
	"category_top2": {
		topN:            2,
		rankWeights:     []float64{10, 20, 40, 80},
		pointThresholds: []float64{40, 80, 160, 320},
	},
}

// registerBuiltins wires the built-in scoring methods. Registration
// cannot fail here: the method set is a compile-time table with unique
// keys.
func (r *StrategyRegistry) registerBuiltins() {
	for method, params := range builtinParams {
		method, params := method, params
		var builder strategyBuilder

		switch method {
		case "energy_harmonic", "energy_harmonic_pooled":
			builder = func(difficulty string, tierIndex int) (ports.Strategy, error) {
				cfg, err := params.harmonicConfig(difficulty, tierIndex, params.thresholds)
				if err != nil {
					return nil, err
				}
				return strategies.NewHarmonicEnergyStrategy(method, cfg)
			}

		case "energy_harmonic_plus":
			builder = func(difficulty string, tierIndex int) (ports.Strategy, error) {
				normalCfg, err := params.harmonicConfig(difficulty, tierIndex, params.thresholds)
				if err != nil {
					return nil, err
				}
				plusCfg, err := params.harmonicConfig(difficulty, tierIndex, params.plusThresholds)
				if err != nil {
					return nil, err
				}
				normal, err := strategies.NewHarmonicEnergyStrategy(method+":normal", normalCfg)
				if err != nil {
					return nil, err
				}
				plus, err := strategies.NewHarmonicEnergyStrategy(method+":plus", plusCfg)
				if err != nil {
					return nil, err
				}
				return strategies.NewMaxOfStrategy(method, normal, plus)
			}

		case "energy_harmonic_singularity":
			builder = func(difficulty string, tierIndex int) (ports.Strategy, error) {
				cfg, err := params.harmonicConfig(difficulty, tierIndex, params.thresholds)
				if err != nil {
					return nil, err
				}
				inner, err := strategies.NewHarmonicEnergyStrategy(method+":inner", cfg)
				if err != nil {
					return nil, err
				}
				return strategies.NewSingularityStrategy(method, inner, strategies.SingularityConfig{
					MinMaxed: params.minMaxed,
					TopRank:  len(cfg.Thresholds) + cfg.RankOffset,
				})
			}

		case "rank_count":
			builder = func(string, int) (ports.Strategy, error) {
				return strategies.NewCumulativeCountStrategy(method, strategies.CumulativeCountConfig{
					RequiredCount: params.requiredCount,
				})
			}

		case "point_total":
			builder = func(string, int) (ports.Strategy, error) {
				return strategies.NewPointSumStrategy(method, strategies.PointSumConfig{
					RankPoints:      params.rankPoints,
					PositionWeights: params.positionWeights,
					Thresholds:      params.pointThresholds,
				})
			}

		case "category_top2":
			builder = func(string, int) (ports.Strategy, error) {
				return strategies.NewCategoryTopNStrategy(method, strategies.CategoryTopNConfig{
					TopN:        params.topN,
					RankWeights: params.rankWeights,
					Thresholds:  params.pointThresholds,
				})
			}
		}

		if builder != nil {
			// Register never fails for the compile-time table.
			_ = r.Register(method, builder)
		}
	}
}
