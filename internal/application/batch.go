package application

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

// BatchRequest is one evaluation of a batch: a snapshot, the benchmark
// and difficulty to score it against, and optional positional score
// overrides applied before evaluation.
type BatchRequest struct {
	Snapshot   domain.Snapshot
	Benchmark  domain.Benchmark
	Difficulty string
	Overrides  []float64
}

// EvaluateBatch runs the requests concurrently through the evaluator
// and returns the results in request order. Each request evaluates an
// unaliased copy of its snapshot, with overrides applied to the copy.
// limit bounds the number of concurrent evaluations; zero or negative
// means unbounded. A canceled context stops scheduling and returns the
// context error; already-finished slots keep their results.
func EvaluateBatch(ctx context.Context, ev ports.Evaluator, reqs []BatchRequest, limit int) ([]domain.OverallRankResult, error) {
	results := make([]domain.OverallRankResult, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			snap := req.Snapshot.Clone()
			if len(req.Overrides) > 0 {
				snap = domain.ApplyOverrides(snap, req.Overrides)
			}
			results[i] = ev.Evaluate(snap, req.Benchmark, req.Difficulty)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
