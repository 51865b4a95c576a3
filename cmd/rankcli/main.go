// Command rankcli evaluates one benchmark rank request.
//
// It reads a single JSON request from stdin:
//
//	{"apiData": {...}, "benchmark": {...}, "difficulty": "novice", "scoreOverrides": [-1, 85.5]}
//
// and writes the evaluation result to stdout:
//
//	{"success": true, "result": {"rank": 2, "rankName": "Bronze", ...}}
//
// Failures to parse the request are reported on the same channel as
// {"success": false, "error": "..."}; the process exits zero either
// way so callers distinguish outcomes by the payload, not the exit
// code. Diagnostics go to stderr as structured logs.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rsavage/benchrank/infrastructure/middleware"
	"github.com/rsavage/benchrank/internal/application"
	"github.com/rsavage/benchrank/internal/config"
	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

// request is the stdin wire contract.
type request struct {
	APIData        domain.Snapshot  `json:"apiData"`
	Benchmark      domain.Benchmark `json:"benchmark"`
	Difficulty     string           `json:"difficulty"`
	ScoreOverrides []float64        `json:"scoreOverrides"`
}

// response is the stdout wire contract.
type response struct {
	Success bool                      `json:"success"`
	Result  *domain.OverallRankResult `json:"result,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))

	evaluator := buildEvaluator(cfg, logger)

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, logger)
	}

	var req request
	if err := json.NewDecoder(stdin).Decode(&req); err != nil {
		logger.Error("malformed request", "error", err)
		return writeResponse(stdout, cfg, response{Success: false, Error: fmt.Sprintf("malformed request: %v", err)})
	}

	snap := req.APIData
	if len(req.ScoreOverrides) > 0 {
		snap = domain.ApplyOverrides(snap, req.ScoreOverrides)
	}

	result := evaluator.Evaluate(snap, req.Benchmark, req.Difficulty)
	logger.Debug("evaluation finished",
		"benchmark", req.Benchmark.Name,
		"difficulty", req.Difficulty,
		"rank", result.Rank,
		"rankName", result.RankName)

	return writeResponse(stdout, cfg, response{Success: true, Result: &result})
}

// buildEvaluator assembles the coordinator with its middleware chain.
func buildEvaluator(cfg *config.Config, logger *slog.Logger) ports.Evaluator {
	coordinator := application.NewCoordinator(application.NewStrategyRegistry(), logger)

	var evaluator ports.Evaluator = middleware.NewTracingEvaluator(coordinator)
	if cfg.MetricsAddr != "" {
		evaluator = middleware.NewInstrumentedEvaluator(evaluator, middleware.NewPrometheusMetrics(nil))
	}
	return evaluator
}

// serveMetrics exposes the Prometheus scrape endpoint for the lifetime
// of the process.
func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics listener starting", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics listener stopped", "error", err)
	}
}

func writeResponse(w io.Writer, cfg *config.Config, resp response) error {
	enc := json.NewEncoder(w)
	if cfg.IndentOutput {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
