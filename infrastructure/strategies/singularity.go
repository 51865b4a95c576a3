package strategies

import (
	"fmt"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

var _ ports.Strategy = (*SingularityStrategy)(nil)

// SingularityStrategy gates the maximum rank behind a minimum count of
// maxed-out scenarios. The wrapped strategy can put a player at the top
// rank on aggregate numbers alone; the singularity rule additionally
// demands that at least MinMaxed scenarios individually topped their
// ladders, and demotes the result one rank until they do. Progress at
// the demoted rank is the maxed-scenario fraction.
type SingularityStrategy struct {
	name  string
	inner ports.Strategy
	// config contains validated parameters, immutable after creation.
	config SingularityConfig
}

// SingularityConfig defines the promotion gate parameters.
type SingularityConfig struct {
	// MinMaxed is how many scenarios must top out their ladders before
	// the maximum rank is granted.
	MinMaxed int `yaml:"min_maxed" json:"min_maxed" validate:"required,min=1"`

	// TopRank is the rank being gated (the ladder's highest rank).
	TopRank int `yaml:"top_rank" json:"top_rank" validate:"required,min=1"`
}

// NewSingularityStrategy wraps a strategy with the promotion gate.
func NewSingularityStrategy(name string, inner ports.Strategy, config SingularityConfig) (*SingularityStrategy, error) {
	if name == "" {
		return nil, ErrEmptyStrategyName
	}
	if inner == nil {
		return nil, ErrNilStrategy
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &SingularityStrategy{name: name, inner: inner, config: config}, nil
}

// Name returns the unique identifier for this strategy instance.
func (s *SingularityStrategy) Name() string { return s.name }

// Evaluate runs the wrapped strategy and applies the promotion gate.
func (s *SingularityStrategy) Evaluate(in ports.EvalInput) (domain.StrategyResult, error) {
	result, err := s.inner.Evaluate(in)
	if err != nil {
		return domain.StrategyResult{}, fmt.Errorf("%s: %w", s.inner.Name(), err)
	}

	maxed := countMaxed(in)
	result.Details = domain.WithDetail(result.Details, domain.DetailMaxedScenarios, maxed)

	if result.Rank >= s.config.TopRank && maxed < s.config.MinMaxed {
		result.Rank = s.config.TopRank - 1
		progress := floorProgress(float64(maxed) / float64(s.config.MinMaxed))
		if progress > maxedGateProgressCap {
			progress = maxedGateProgressCap
		}
		result.Details = domain.WithDetail(result.Details, domain.DetailProgress, progress)
	}
	return result, nil
}

// maxedGateProgressCap keeps a gated result visibly short of promotion.
const maxedGateProgressCap = 0.99

// Validate checks the gate parameters and the wrapped strategy.
func (s *SingularityStrategy) Validate() error {
	if err := validate.Struct(s.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return s.inner.Validate()
}
