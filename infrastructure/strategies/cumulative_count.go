package strategies

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

var _ ports.Strategy = (*CumulativeCountStrategy)(nil)

// CumulativeCountStrategy ranks a benchmark by counting how many
// scenarios reached each discrete rank. Walking ranks from highest to
// lowest, the overall rank is the highest rank whose cumulative scenario
// count (scenarios at that rank or above) meets the required count.
// Progress toward the next rank is the fraction of the required count
// already gathered one rank higher.
type CumulativeCountStrategy struct {
	// name is the unique identifier for this strategy instance.
	name string
	// config contains validated parameters, immutable after creation.
	config CumulativeCountConfig
}

// CumulativeCountConfig defines the parameters for the
// CumulativeCountStrategy.
type CumulativeCountConfig struct {
	// RequiredCount is how many scenarios must reach a rank before the
	// benchmark as a whole holds it.
	RequiredCount int `yaml:"required_count" json:"required_count" validate:"required,min=1"`
}

// NewCumulativeCountStrategy creates a CumulativeCountStrategy with the
// given configuration.
func NewCumulativeCountStrategy(name string, config CumulativeCountConfig) (*CumulativeCountStrategy, error) {
	if name == "" {
		return nil, ErrEmptyStrategyName
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &CumulativeCountStrategy{name: name, config: config}, nil
}

// Name returns the unique identifier for this strategy instance.
func (s *CumulativeCountStrategy) Name() string { return s.name }

// Evaluate counts scenarios per rank and finds the highest rank whose
// cumulative count meets the requirement. The number of achievable ranks
// is taken from the longest scenario ladder in the input.
func (s *CumulativeCountStrategy) Evaluate(in ports.EvalInput) (domain.StrategyResult, error) {
	scenarios := in.Aligned.Scenarios()

	numRanks := 0
	for _, sc := range scenarios {
		if n := len(sc.Record.RankMaxes); n > numRanks {
			numRanks = n
		}
	}
	if numRanks == 0 {
		return resultWithRank(0, 0, domain.NewDetails()), nil
	}

	// cumulative[r] = scenarios whose base rank is at least r (1-based).
	cumulative := make([]int, numRanks+2)
	for _, sc := range scenarios {
		for r := 1; r <= sc.Rank.BaseRank && r <= numRanks; r++ {
			cumulative[r]++
		}
	}

	required := float64(s.config.RequiredCount)
	rank := 0
	for r := numRanks; r >= 1; r-- {
		if cumulative[r] >= s.config.RequiredCount {
			rank = r
			break
		}
	}
	progress := floorProgress(float64(cumulative[rank+1]) / required)

	details := domain.WithDetail(domain.NewDetails(), domain.DetailRankCounts, cumulative[1:numRanks+1])
	details = domain.WithDetail(details, domain.DetailMaxedScenarios, countMaxed(in))
	return resultWithRank(rank, progress, details), nil
}

// Validate checks that the strategy configuration is still coherent.
func (s *CumulativeCountStrategy) Validate() error {
	if err := validate.Struct(s.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// UnmarshalParameters decodes YAML parameters into a fresh config and
// swaps it in after validation.
func (s *CumulativeCountStrategy) UnmarshalParameters(params yaml.Node) error {
	var config CumulativeCountConfig
	if err := params.Decode(&config); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}
	s.config = config
	return nil
}

// NewCumulativeCountFromConfig creates a CumulativeCountStrategy from a
// configuration map.
func NewCumulativeCountFromConfig(id string, config map[string]any) (ports.Strategy, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	var cfg CumulativeCountConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return NewCumulativeCountStrategy(id, cfg)
}
