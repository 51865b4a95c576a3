// Package ports defines the interfaces that form the contract between
// the domain/application layers and the strategy and middleware
// implementations. These interfaces enable dependency inversion and make
// the engine testable.
package ports

import (
	"github.com/rsavage/benchrank/internal/domain"
)

// EvalInput is the aligned, read-only view of one evaluation that every
// strategy consumes. Callers build it once per evaluation; strategies
// must not retain or mutate it.
type EvalInput struct {
	// Difficulty is the name of the tier being evaluated.
	Difficulty string

	// Aligned is the schema-shaped view of the score snapshot with
	// per-scenario rank interpolation already performed.
	Aligned domain.AlignedDifficulty

	// Tiers is the ranked-tier metadata for display-name resolution.
	Tiers []domain.RankTier
}

// Strategy is one aggregation strategy: a pure reduction from aligned
// per-scenario results to an overall rank with a diagnostic payload.
// Implementations must be stateless after construction and safe for
// concurrent use; configuration is immutable once validated.
type Strategy interface {
	// Name returns the unique identifier for this strategy instance.
	// It is used for diagnostics and registry lookups.
	Name() string

	// Evaluate reduces the aligned input to an overall rank. It never
	// blocks and never panics; arithmetic edge cases resolve to rank
	// zero. An error indicates a configuration-level problem (the
	// coordinator treats it as a fallback condition, never a thrown
	// failure).
	Evaluate(in EvalInput) (domain.StrategyResult, error)

	// Validate checks that the strategy is properly configured.
	// It is called at registry construction, before any evaluation.
	Validate() error
}

// StrategyFactory builds a configured strategy from a parameter map.
// Factories are registered per scoring-method identifier.
type StrategyFactory func(id string, config map[string]any) (Strategy, error)

// Evaluator is the engine's top-level entry point: a pure, synchronous
// computation with no I/O and no cross-call state. Failure is never an
// error value; missing or malformed input resolves to the no-data
// result.
type Evaluator interface {
	Evaluate(snap domain.Snapshot, bench domain.Benchmark, difficulty string) domain.OverallRankResult
}

// EvaluatorFunc adapts a function to the Evaluator interface, mirroring
// http.HandlerFunc. Middleware uses it to wrap evaluators.
type EvaluatorFunc func(domain.Snapshot, domain.Benchmark, string) domain.OverallRankResult

// Evaluate calls the wrapped function.
func (f EvaluatorFunc) Evaluate(snap domain.Snapshot, bench domain.Benchmark, difficulty string) domain.OverallRankResult {
	return f(snap, bench, difficulty)
}
