// Package application wires the domain primitives and the aggregation
// strategies into the engine's top-level evaluation flow: a registry
// that resolves a benchmark's scoring method to a configured strategy,
// the complete-rank baseline, and the coordinator that arbitrates
// between them.
package application

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rsavage/benchrank/internal/domain"
	"github.com/rsavage/benchrank/internal/ports"
)

// strategyBuilder constructs a strategy configured for one difficulty
// tier. tierIndex is the difficulty's position in the benchmark's
// declared order; pooled scoring methods slice their global threshold
// ladder with it.
type strategyBuilder func(difficulty string, tierIndex int) (ports.Strategy, error)

// StrategyRegistry maps scoring-method identifiers to strategy
// builders. The built-in methods are registered at construction;
// additional methods can be registered before evaluation starts.
// All methods are safe for concurrent use.
type StrategyRegistry struct {
	mu       sync.RWMutex
	builders map[string]strategyBuilder
}

// NewStrategyRegistry creates a registry pre-populated with the
// built-in scoring methods.
func NewStrategyRegistry() *StrategyRegistry {
	r := &StrategyRegistry{builders: make(map[string]strategyBuilder)}
	r.registerBuiltins()
	return r
}

// Register adds a builder for a scoring-method identifier. Identifiers
// are case-insensitive. Registering an already-registered identifier is
// an error; replacing a method silently would change scoring behavior
// for every benchmark declaring it.
func (r *StrategyRegistry) Register(method string, builder strategyBuilder) error {
	if method == "" {
		return fmt.Errorf("scoring method identifier cannot be empty")
	}
	if builder == nil {
		return fmt.Errorf("builder for %q cannot be nil", method)
	}

	key := strings.ToLower(method)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.builders[key]; exists {
		return fmt.Errorf("scoring method %q already registered", method)
	}
	r.builders[key] = builder
	return nil
}

// RegisterFactory registers an externally supplied strategy factory
// with a fixed parameter map. The factory is invoked once per Resolve
// call, so it must be cheap and side-effect free.
func (r *StrategyRegistry) RegisterFactory(method string, factory ports.StrategyFactory, config map[string]any) error {
	if factory == nil {
		return fmt.Errorf("factory for %q cannot be nil", method)
	}
	return r.Register(method, func(string, int) (ports.Strategy, error) {
		return factory(method, config)
	})
}

// Resolve builds the configured strategy for the benchmark's scoring
// method and the given difficulty tier. An unknown method returns a
// wrapped domain.ErrUnregisteredStrategy; the coordinator treats every
// Resolve error as a fallback condition, never a thrown failure.
func (r *StrategyRegistry) Resolve(bench domain.Benchmark, difficulty string, tierIndex int) (ports.Strategy, error) {
	r.mu.RLock()
	builder, ok := r.builders[strings.ToLower(bench.Method)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", bench.Method, domain.ErrUnregisteredStrategy)
	}

	strategy, err := builder(difficulty, tierIndex)
	if err != nil {
		return nil, fmt.Errorf("build strategy for %q: %w", bench.Method, err)
	}
	if err := strategy.Validate(); err != nil {
		return nil, fmt.Errorf("validate strategy for %q: %w", bench.Method, err)
	}
	return strategy, nil
}

// Methods returns the registered scoring-method identifiers in no
// particular order.
func (r *StrategyRegistry) Methods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.builders))
	for k := range r.builders {
		out = append(out, k)
	}
	return out
}
