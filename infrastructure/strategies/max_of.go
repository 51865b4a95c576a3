package strategies

import (
	"fmt"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

var _ ports.Strategy = (*MaxOfStrategy)(nil)

// MaxOfStrategy composes two strategies and keeps whichever produces the
// higher rank, carrying that branch's detail payload. Benchmarks with a
// "plus" tie-break ladder run their normal ladder and the plus ladder
// through the same aggregation and take the maximum; keeping the
// composition explicit here avoids a copy-pasted second formula.
type MaxOfStrategy struct {
	name      string
	primary   ports.Strategy
	secondary ports.Strategy
}

// NewMaxOfStrategy creates a MaxOfStrategy over the two given
// strategies. Ties go to the primary branch.
func NewMaxOfStrategy(name string, primary, secondary ports.Strategy) (*MaxOfStrategy, error) {
	if name == "" {
		return nil, ErrEmptyStrategyName
	}
	if primary == nil || secondary == nil {
		return nil, ErrNilStrategy
	}
	return &MaxOfStrategy{name: name, primary: primary, secondary: secondary}, nil
}

// Name returns the unique identifier for this strategy instance.
func (s *MaxOfStrategy) Name() string { return s.name }

// Evaluate runs both branches and returns the higher-ranked result.
func (s *MaxOfStrategy) Evaluate(in ports.EvalInput) (domain.StrategyResult, error) {
	primary, err := s.primary.Evaluate(in)
	if err != nil {
		return domain.StrategyResult{}, fmt.Errorf("%s: %w", s.primary.Name(), err)
	}
	secondary, err := s.secondary.Evaluate(in)
	if err != nil {
		return domain.StrategyResult{}, fmt.Errorf("%s: %w", s.secondary.Name(), err)
	}

	if secondary.Rank > primary.Rank {
		return secondary, nil
	}
	return primary, nil
}

// Validate checks both composed strategies.
func (s *MaxOfStrategy) Validate() error {
	if err := s.primary.Validate(); err != nil {
		return fmt.Errorf("%s: %w", s.primary.Name(), err)
	}
	if err := s.secondary.Validate(); err != nil {
		return fmt.Errorf("%s: %w", s.secondary.Name(), err)
	}
	return nil
}
