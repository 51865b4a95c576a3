package strategies

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

var _ ports.Strategy = (*PointSumStrategy)(nil)

// PointSumStrategy ranks a benchmark by summing points earned per
// scenario. A scenario's points depend on the rank it achieved; within a
// category, scenarios are ordered by precise rank and the positional
// decay weights make the strongest scenario worth more than subsequent
// ones. The total is mapped onto fixed point thresholds.
type PointSumStrategy struct {
	// name is the unique identifier for this strategy instance.
	name string
	// config contains validated parameters, immutable after creation.
	config PointSumConfig
}

// PointSumConfig defines the parameters for the PointSumStrategy.
type PointSumConfig struct {
	// RankPoints maps an achieved base rank (1-based index into this
	// slice) to the points it is worth. Ranks past the end clamp to the
	// last entry; unranked scenarios earn nothing.
	RankPoints []float64 `yaml:"rank_points" json:"rank_points" validate:"required,min=1"`

	// PositionWeights are multipliers applied per position after
	// sorting a category's scenarios by precise rank, strongest first.
	// Positions past the end clamp to the last entry; an empty slice
	// weights every position equally.
	PositionWeights []float64 `yaml:"position_weights" json:"position_weights"`

	// Thresholds is the point ladder the total is mapped onto.
	Thresholds []float64 `yaml:"thresholds" json:"thresholds" validate:"required,min=1"`
}

// NewPointSumStrategy creates a PointSumStrategy with the given
// configuration.
func NewPointSumStrategy(name string, config PointSumConfig) (*PointSumStrategy, error) {
	if name == "" {
		return nil, ErrEmptyStrategyName
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &PointSumStrategy{name: name, config: config}, nil
}

// Name returns the unique identifier for this strategy instance.
func (s *PointSumStrategy) Name() string { return s.name }

// Evaluate sums weighted per-scenario points per category and maps the
// total onto the point thresholds.
func (s *PointSumStrategy) Evaluate(in ports.EvalInput) (domain.StrategyResult, error) {
	byCategory := groupByCategory(in.Aligned)

	total := 0.0
	categoryPoints := make([]domain.CategoryPoints, 0, len(byCategory))
	for _, cat := range byCategory {
		scenarios := append([]domain.AlignedScenario(nil), cat.scenarios...)
		sort.SliceStable(scenarios, func(i, j int) bool {
			return scenarios[i].Rank.PreciseRank > scenarios[j].Rank.PreciseRank
		})

		points := 0.0
		for pos, sc := range scenarios {
			points += s.positionWeight(pos) * s.rankPoints(sc.Rank.BaseRank)
		}
		total += points
		categoryPoints = append(categoryPoints, domain.CategoryPoints{Category: cat.name, Points: points})
	}

	rank, progress := mapToThresholds(total, s.config.Thresholds)

	details := domain.WithDetail(domain.NewDetails(), domain.DetailPointTotal, total)
	details = domain.WithDetail(details, domain.DetailCategoryPoints, categoryPoints)
	details = domain.WithDetail(details, domain.DetailMaxedScenarios, countMaxed(in))
	return resultWithRank(rank, progress, details), nil
}

// Validate checks that the strategy configuration is still coherent.
func (s *PointSumStrategy) Validate() error {
	if err := validate.Struct(s.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// UnmarshalParameters decodes YAML parameters into a fresh config and
// swaps it in after validation.
func (s *PointSumStrategy) UnmarshalParameters(params yaml.Node) error {
	var config PointSumConfig
	if err := params.Decode(&config); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}
	s.config = config
	return nil
}

func (s *PointSumStrategy) rankPoints(baseRank int) float64 {
	if baseRank <= 0 {
		return 0
	}
	if baseRank > len(s.config.RankPoints) {
		baseRank = len(s.config.RankPoints)
	}
	return s.config.RankPoints[baseRank-1]
}

func (s *PointSumStrategy) positionWeight(pos int) float64 {
	if len(s.config.PositionWeights) == 0 {
		return 1
	}
	if pos >= len(s.config.PositionWeights) {
		pos = len(s.config.PositionWeights) - 1
	}
	return s.config.PositionWeights[pos]
}

// NewPointSumFromConfig creates a PointSumStrategy from a configuration
// map.
func NewPointSumFromConfig(id string, config map[string]any) (ports.Strategy, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	var cfg PointSumConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return NewPointSumStrategy(id, cfg)
}

// categoryGroup collects one category's scenarios across its
// subcategories.
type categoryGroup struct {
	name      string
	scenarios []domain.AlignedScenario
}

// groupByCategory flattens an aligned difficulty into per-category
// scenario groups, preserving schema order.
func groupByCategory(aligned domain.AlignedDifficulty) []categoryGroup {
	var groups []categoryGroup
	index := make(map[string]int)
	for _, sub := range aligned.Subcategories {
		i, ok := index[sub.Category]
		if !ok {
			i = len(groups)
			index[sub.Category] = i
			groups = append(groups, categoryGroup{name: sub.Category})
		}
		groups[i].scenarios = append(groups[i].scenarios, sub.Scenarios...)
	}
	return groups
}
