// Package strategies provides the aggregation strategies that reduce
// aligned per-scenario results to one overall benchmark rank.
package strategies

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

// Common errors returned by strategy constructors and evaluations.
var (
	// ErrEmptyStrategyName is returned when a strategy is created with
	// an empty name.
	ErrEmptyStrategyName = errors.New("strategy name cannot be empty")

	// ErrNilStrategy is returned when a composing strategy is built
	// around a nil inner strategy.
	ErrNilStrategy = errors.New("inner strategy cannot be nil")
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// mapToThresholds is the weighted-threshold template shared by every
// point- and mean-based strategy: rank is the highest index whose
// threshold the total has reached (1-based), and progress is the
// fraction toward the surrounding pair, floored to two decimals.
func mapToThresholds(total float64, thresholds []float64) (rank int, progress float64) {
	if len(thresholds) == 0 || total <= 0 {
		return 0, 0
	}
	for _, t := range thresholds {
		if total >= t {
			rank++
		}
	}

	switch {
	case rank == 0:
		progress = total / thresholds[0]
	case rank == len(thresholds):
		progress = 1
	default:
		lower := thresholds[rank-1]
		upper := thresholds[rank]
		width := upper - lower
		if width <= 0 {
			width = 1
		}
		progress = (total - lower) / width
	}

	return rank, floorProgress(progress)
}

// floorProgress floors a progress fraction to two decimals and clamps it
// into [0,1].
func floorProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return math.Floor(p*100) / 100
}

// countMaxed returns how many aligned scenarios topped out their
// threshold ladders.
func countMaxed(in ports.EvalInput) int {
	count := 0
	for _, sc := range in.Aligned.Scenarios() {
		if sc.Rank.Maxed {
			count++
		}
	}
	return count
}

// resultWithRank builds a StrategyResult carrying the computed rank and
// progress plus any extra details the caller attached.
func resultWithRank(rank int, progress float64, details domain.Details) domain.StrategyResult {
	details = domain.WithDetail(details, domain.DetailProgress, progress)
	return domain.StrategyResult{Rank: rank, Details: details}
}
