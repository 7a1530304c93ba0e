// Package builder: the Build orchestrator and its configuration.
package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/adjacency/core"
)

// IDFunc maps a topology index (0..n-1) to a vertex identifier.
type IDFunc[V cmp.Ordered] func(i int) V

// Index is the identity IDFunc for graphs keyed by int.
func Index(i int) int { return i }

// WeightFunc derives an edge weight from the endpoint indices (i,j) of the
// emitted edge. Deterministic inputs produce deterministic weights.
type WeightFunc func(i, j int) int64

// config is the resolved builder configuration shared by all constructors
// of one Build call.
type config struct {
	weightFn WeightFunc // nil → core.DefaultWeight
}

// Option configures a Build call via functional arguments.
type Option func(*config)

// WithWeightFunc derives edge weights from endpoint indices instead of
// using core.DefaultWeight. A nil fn is ignored.
func WithWeightFunc(fn WeightFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// Constructor applies one deterministic topology mutation to g under the
// resolved configuration. Constructors validate parameters early, return
// sentinel errors, and never panic.
type Constructor[V cmp.Ordered] func(g core.Graph[V], cfg config) error

// Build resolves opts and applies all constructors to g in order.
// The first constructor error is wrapped with "Build: %w" and returned
// immediately; no partial cleanup is attempted.
func Build[V cmp.Ordered](g core.Graph[V], opts []Option, cons ...Constructor[V]) error {
	if g == nil {
		return fmt.Errorf("Build: %w", ErrNilGraph)
	}

	// Resolve configuration deterministically, left to right.
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// Apply constructors sequentially to preserve deterministic effects.
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// addEdge emits one edge using the configured weight policy.
func addEdge[V cmp.Ordered](g core.Graph[V], cfg config, id IDFunc[V], i, j int) {
	if cfg.weightFn != nil {
		g.AddEdge(id(i), id(j), core.WithWeight(cfg.weightFn(i, j)))
		return
	}
	g.AddEdge(id(i), id(j))
}
