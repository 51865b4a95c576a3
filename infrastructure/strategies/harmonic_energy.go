package strategies

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

var _ ports.Strategy = (*HarmonicEnergyStrategy)(nil)

// HarmonicEnergyStrategy aggregates one benchmark by the harmonic mean
// of per-subcategory energies. Each subcategory contributes its single
// best scenario, converted onto the benchmark's energy scale; the
// harmonic mean penalizes any single weak subcategory
// disproportionately, which is exactly why the benchmark families using
// it chose it.
//
// Coverage is exact: a subcategory with zero energy zeroes the whole
// mean rather than shrinking the denominator. Partial credit would let a
// player skip their weakest subcategory entirely.
//
// The strategy is stateless and safe for concurrent use once built.
type HarmonicEnergyStrategy struct {
	// name is the unique identifier for this strategy instance.
	name string
	// config contains validated parameters, immutable after creation.
	config HarmonicEnergyConfig
	// scale is the energy scale derived from the config.
	scale domain.EnergyScale
}

// HarmonicEnergyConfig defines the parameters for the
// HarmonicEnergyStrategy. All fields are validated during construction
// and parameter unmarshaling; the config is immutable after validation.
type HarmonicEnergyConfig struct {
	// Thresholds is the energy threshold ladder the harmonic mean is
	// mapped onto, strictly increasing, one entry per achievable rank.
	Thresholds []float64 `yaml:"thresholds" json:"thresholds" validate:"required,min=1"`

	// FakeLowerOffset is the synthetic climb below the first rank.
	FakeLowerOffset float64 `yaml:"fake_lower_offset" json:"fake_lower_offset" validate:"min=0"`

	// FakeUpperCount is how many synthetic rank-widths energy keeps
	// climbing past the top rank.
	FakeUpperCount int `yaml:"fake_upper_count" json:"fake_upper_count" validate:"min=0"`

	// SubcategoryFilter restricts aggregation to the named
	// subcategories when non-empty. Names match case-insensitively.
	SubcategoryFilter []string `yaml:"subcategory_filter" json:"subcategory_filter"`

	// ClampEnergy caps every subcategory energy when positive.
	// Advanced-tier ladders set it to the top real threshold.
	ClampEnergy float64 `yaml:"clamp_energy" json:"clamp_energy" validate:"min=0"`

	// RankOffset shifts the mapped rank into a global tier list for
	// benchmarks that pool one threshold ladder across difficulties.
	RankOffset int `yaml:"rank_offset" json:"rank_offset" validate:"min=0"`
}

// NewHarmonicEnergyStrategy creates a HarmonicEnergyStrategy with the
// given configuration. It returns ErrEmptyStrategyName for an empty name
// or a wrapped validation error for an invalid config.
func NewHarmonicEnergyStrategy(name string, config HarmonicEnergyConfig) (*HarmonicEnergyStrategy, error) {
	if name == "" {
		return nil, ErrEmptyStrategyName
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &HarmonicEnergyStrategy{
		name:   name,
		config: config,
		scale: domain.EnergyScale{
			Thresholds:      config.Thresholds,
			FakeLowerOffset: config.FakeLowerOffset,
			FakeUpperCount:  config.FakeUpperCount,
		},
	}, nil
}

// Name returns the unique identifier for this strategy instance.
func (s *HarmonicEnergyStrategy) Name() string { return s.name }

// Evaluate picks each subcategory's best scenario, converts it to
// energy, and maps the harmonic mean of the energies onto the rank
// thresholds.
//
// Best-scenario selection order: highest precise rank, then highest
// energy, then highest fractional progress toward the first threshold
// (the only signal left when both candidates are unranked).
func (s *HarmonicEnergyStrategy) Evaluate(in ports.EvalInput) (domain.StrategyResult, error) {
	subcats := s.filteredSubcategories(in.Aligned)
	if len(subcats) == 0 {
		return resultWithRank(0, 0, domain.NewDetails()), nil
	}

	energies := make([]domain.SubcategoryEnergy, 0, len(subcats))
	covered := true
	for _, sub := range subcats {
		best, energy := s.bestScenario(sub)
		if s.config.ClampEnergy > 0 && float64(energy) > s.config.ClampEnergy {
			energy = int(s.config.ClampEnergy)
		}
		if energy <= 0 {
			covered = false
		}
		energies = append(energies, domain.SubcategoryEnergy{
			Category:    sub.Category,
			Subcategory: sub.Name,
			Scenario:    best.Name,
			Energy:      energy,
		})
	}

	mean := 0.0
	if covered {
		mean = harmonicMean(energies)
	}

	rank, progress := mapToThresholds(mean, s.config.Thresholds)
	if rank > 0 {
		rank += s.config.RankOffset
	}

	details := domain.NewDetails()
	details = domain.WithDetail(details, domain.DetailEnergies, energies)
	details = domain.WithDetail(details, domain.DetailHarmonicMean, mean)
	details = domain.WithDetail(details, domain.DetailMaxedScenarios, countMaxed(in))
	return resultWithRank(rank, progress, details), nil
}

// Validate checks that the strategy configuration is still coherent.
func (s *HarmonicEnergyStrategy) Validate() error {
	if err := validate.Struct(s.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// UnmarshalParameters decodes YAML parameters into a fresh config and
// swaps it in after validation. Not safe for concurrent use with
// Evaluate; reconfigure before sharing.
func (s *HarmonicEnergyStrategy) UnmarshalParameters(params yaml.Node) error {
	var config HarmonicEnergyConfig
	if err := params.Decode(&config); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}
	s.config = config
	s.scale = domain.EnergyScale{
		Thresholds:      config.Thresholds,
		FakeLowerOffset: config.FakeLowerOffset,
		FakeUpperCount:  config.FakeUpperCount,
	}
	return nil
}

func (s *HarmonicEnergyStrategy) filteredSubcategories(aligned domain.AlignedDifficulty) []domain.AlignedSubcategory {
	if len(s.config.SubcategoryFilter) == 0 {
		return aligned.Subcategories
	}
	var out []domain.AlignedSubcategory
	for _, sub := range aligned.Subcategories {
		for _, want := range s.config.SubcategoryFilter {
			if strings.EqualFold(sub.Name, want) {
				out = append(out, sub)
				break
			}
		}
	}
	return out
}

// bestScenario returns the subcategory's strongest scenario and its
// energy on the strategy's scale.
func (s *HarmonicEnergyStrategy) bestScenario(sub domain.AlignedSubcategory) (domain.AlignedScenario, int) {
	var best domain.AlignedScenario
	bestEnergy := -1
	for _, sc := range sub.Scenarios {
		energy := s.scale.Energy(sc.Rank)
		if bestEnergy < 0 || betterScenario(sc, energy, best, bestEnergy) {
			best = sc
			bestEnergy = energy
		}
	}
	if bestEnergy < 0 {
		return domain.AlignedScenario{}, 0
	}
	return best, bestEnergy
}

// betterScenario reports whether candidate a outranks the current best
// b: precise rank first, energy second, sub-rank progress last.
func betterScenario(a domain.AlignedScenario, aEnergy int, b domain.AlignedScenario, bEnergy int) bool {
	if a.Rank.PreciseRank != b.Rank.PreciseRank {
		return a.Rank.PreciseRank > b.Rank.PreciseRank
	}
	if aEnergy != bEnergy {
		return aEnergy > bEnergy
	}
	return a.Rank.ProgressToNext > b.Rank.ProgressToNext
}

// harmonicMean computes N/Σ(1/e) over the subcategory energies, rounded
// to one decimal. Callers guarantee every energy is positive.
func harmonicMean(energies []domain.SubcategoryEnergy) float64 {
	sum := 0.0
	for _, e := range energies {
		sum += 1 / float64(e.Energy)
	}
	if sum == 0 {
		return 0
	}
	mean := float64(len(energies)) / sum
	return math.Round(mean*10) / 10
}

// DefaultHarmonicEnergyConfig returns a config with the extrapolation
// parameters most benchmark seasons use.
func DefaultHarmonicEnergyConfig() HarmonicEnergyConfig {
	return HarmonicEnergyConfig{
		FakeLowerOffset: 100,
		FakeUpperCount:  1,
	}
}

// NewHarmonicEnergyFromConfig creates a HarmonicEnergyStrategy from a
// configuration map. This is the boundary adapter for YAML/JSON
// configuration sources.
func NewHarmonicEnergyFromConfig(id string, config map[string]any) (ports.Strategy, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	// Start with defaults, then overlay user config.
	cfg := DefaultHarmonicEnergyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return NewHarmonicEnergyStrategy(id, cfg)
}
