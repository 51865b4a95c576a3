package application

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

var _ ports.Evaluator = (*Coordinator)(nil)

// Coordinator is the engine's top-level evaluator. It aligns the
// snapshot against the schema, runs the benchmark's registered strategy
// alongside the complete-rank baseline, and returns whichever produced
// the higher rank. Every failure mode resolves to a value: missing or
// malformed input becomes the no-data result, an unregistered or
// failing strategy falls back to the complete rank.
type Coordinator struct {
	registry *StrategyRegistry
	logger   *slog.Logger
}

// NewCoordinator creates a Coordinator over the given registry. A nil
// logger falls back to slog.Default.
func NewCoordinator(registry *StrategyRegistry, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{registry: registry, logger: logger}
}

// Evaluate computes the overall rank for one snapshot against one
// benchmark difficulty. It never returns an error and never panics;
// the result always carries an evaluation id for correlation.
func (c *Coordinator) Evaluate(snap domain.Snapshot, bench domain.Benchmark, difficulty string) domain.OverallRankResult {
	if len(snap.Categories) == 0 || len(snap.Tiers) == 0 {
		return domain.NoDataResult()
	}

	dif, tierIndex, ok := bench.FindDifficulty(difficulty)
	if !ok {
		c.logger.Warn("difficulty not in benchmark schema",
			"benchmark", bench.Name, "difficulty", difficulty)
		return domain.NoDataResult()
	}

	aligned, err := domain.AlignScenarios(dif, snap)
	if err != nil {
		c.logger.Warn("snapshot does not fit the schema",
			"benchmark", bench.Name, "difficulty", dif.Name, "error", err)
		return domain.NoDataResult()
	}

	evalID := uuid.NewString()
	complete := CompleteRank(aligned)

	var strategyResult domain.StrategyResult
	fallback := false

	strategy, err := c.registry.Resolve(bench, dif.Name, tierIndex)
	if err != nil {
		c.logger.Warn("no usable strategy, falling back to complete rank",
			"benchmark", bench.Name, "method", bench.Method, "error", err)
		fallback = true
	} else {
		strategyResult, err = strategy.Evaluate(ports.EvalInput{
			Difficulty: dif.Name,
			Aligned:    aligned,
			Tiers:      snap.Tiers,
		})
		if err != nil {
			c.logger.Warn("strategy evaluation failed, falling back to complete rank",
				"benchmark", bench.Name, "method", bench.Method, "error", err)
			fallback = true
		}
	}

	if fallback || complete >= strategyResult.Rank {
		details := domain.WithDetail(domain.NewDetails(), domain.DetailEvaluationID, evalID)
		return domain.OverallRankResult{
			Rank:         complete,
			RankName:     CompleteRankName(snap.Tiers, complete),
			UsedComplete: true,
			FallbackUsed: fallback,
			Details:      details,
		}
	}

	return domain.OverallRankResult{
		Rank:     strategyResult.Rank,
		RankName: snap.TierName(strategyResult.Rank),
		Details:  domain.WithDetail(strategyResult.Details, domain.DetailEvaluationID, evalID),
	}
}
