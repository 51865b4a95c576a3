package strategies

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

var _ ports.Strategy = (*CategoryTopNStrategy)(nil)

// CategoryTopNStrategy ranks a benchmark by selecting the top N
// scenarios per category (by precise rank) and scoring each against a
// rank-specific weight table with linear interpolation between adjacent
// weights. The weighted sum across all categories is mapped onto fixed
// thresholds.
type CategoryTopNStrategy struct {
	// name is the unique identifier for this strategy instance.
	name string
	// config contains validated parameters, immutable after creation.
	config CategoryTopNConfig
}

// CategoryTopNConfig defines the parameters for the
// CategoryTopNStrategy.
type CategoryTopNConfig struct {
	// TopN is how many scenarios each category contributes.
	TopN int `yaml:"top_n" json:"top_n" validate:"required,min=1"`

	// RankWeights maps an achieved rank to its weight; a scenario part
	// way between two ranks interpolates between the surrounding
	// weights. Ranks past the table clamp to the last weight, and an
	// unranked scenario scales the first weight by its sub-rank
	// progress.
	RankWeights []float64 `yaml:"rank_weights" json:"rank_weights" validate:"required,min=2"`

	// Thresholds is the ladder the weighted total is mapped onto.
	Thresholds []float64 `yaml:"thresholds" json:"thresholds" validate:"required,min=1"`
}

// NewCategoryTopNStrategy creates a CategoryTopNStrategy with the given
// configuration.
func NewCategoryTopNStrategy(name string, config CategoryTopNConfig) (*CategoryTopNStrategy, error) {
	if name == "" {
		return nil, ErrEmptyStrategyName
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &CategoryTopNStrategy{name: name, config: config}, nil
}

// Name returns the unique identifier for this strategy instance.
func (s *CategoryTopNStrategy) Name() string { return s.name }

// Evaluate selects each category's strongest TopN scenarios, scores them
// against the weight table, and maps the grand total onto the
// thresholds.
func (s *CategoryTopNStrategy) Evaluate(in ports.EvalInput) (domain.StrategyResult, error) {
	byCategory := groupByCategory(in.Aligned)

	total := 0.0
	categoryPoints := make([]domain.CategoryPoints, 0, len(byCategory))
	for _, cat := range byCategory {
		scenarios := append([]domain.AlignedScenario(nil), cat.scenarios...)
		sort.SliceStable(scenarios, func(i, j int) bool {
			return scenarios[i].Rank.PreciseRank > scenarios[j].Rank.PreciseRank
		})
		if len(scenarios) > s.config.TopN {
			scenarios = scenarios[:s.config.TopN]
		}

		points := 0.0
		for _, sc := range scenarios {
			points += s.weightedValue(sc.Rank)
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
func (s *CategoryTopNStrategy) Validate() error {
	if err := validate.Struct(s.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// UnmarshalParameters decodes YAML parameters into a fresh config and
// swaps it in after validation.
func (s *CategoryTopNStrategy) UnmarshalParameters(params yaml.Node) error {
	var config CategoryTopNConfig
	if err := params.Decode(&config); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}
	s.config = config
	return nil
}

// weightedValue interpolates a scenario's rank position against the
// weight table.
func (s *CategoryTopNStrategy) weightedValue(rank domain.RankResult) float64 {
	if !rank.Valid {
		return 0
	}
	weights := s.config.RankWeights
	switch {
	case rank.BaseRank == 0:
		return rank.ProgressToNext * weights[0]
	case rank.BaseRank >= len(weights):
		return weights[len(weights)-1]
	default:
		lower := weights[rank.BaseRank-1]
		upper := weights[rank.BaseRank]
		return lower + rank.ProgressToNext*(upper-lower)
	}
}

// NewCategoryTopNFromConfig creates a CategoryTopNStrategy from a
// configuration map.
func NewCategoryTopNFromConfig(id string, config map[string]any) (ports.Strategy, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	var cfg CategoryTopNConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return NewCategoryTopNStrategy(id, cfg)
}
