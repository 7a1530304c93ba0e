// Package builder: the concrete topology constructors.
//
// Contract (all constructors):
//   - Validate n against the per-topology minimum (else ErrTooFewVertices)
//     and id for nil (else ErrNilIDFunc) before touching the graph.
//   - Add vertices in ascending index order, then emit edges in a fixed
//     documented order.
//   - Weight policy: cfg.weightFn when configured, core.DefaultWeight
//     otherwise.
//   - Directedness is the graph's own policy; on a Directed graph the
//     emitted arcs follow the stated edge order.
package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/adjacency/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"

	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
)

// validate performs the shared parameter checks of every constructor.
func validate[V cmp.Ordered](method string, n, min int, id IDFunc[V]) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	if id == nil {
		return fmt.Errorf("%s: %w", method, ErrNilIDFunc)
	}

	return nil
}

// Path returns a Constructor that builds the simple path P_n:
// edges (i-1,i) for i=1..n-1. Time O(n log n), space O(1) extra.
func Path[V cmp.Ordered](n int, id IDFunc[V]) Constructor[V] {
	return func(g core.Graph[V], cfg config) error {
		if err := validate(methodPath, n, minPathNodes, id); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddVertex(id(i))
		}
		for i := 1; i < n; i++ {
			addEdge(g, cfg, id, i-1, i)
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n:
// edges (i,(i+1) mod n) for i=0..n-1. Time O(n log n).
func Cycle[V cmp.Ordered](n int, id IDFunc[V]) Constructor[V] {
	return func(g core.Graph[V], cfg config) error {
		if err := validate(methodCycle, n, minCycleNodes, id); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddVertex(id(i))
		}
		for i := 0; i < n; i++ {
			addEdge(g, cfg, id, i, (i+1)%n)
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n:
// edges (i,j) for all i<j in lexicographic order. Time O(n² log n).
func Complete[V cmp.Ordered](n int, id IDFunc[V]) Constructor[V] {
	return func(g core.Graph[V], cfg config) error {
		if err := validate(methodComplete, n, minCompleteNodes, id); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddVertex(id(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				addEdge(g, cfg, id, i, j)
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds the star S_n: center index 0,
// edges (0,i) for i=1..n-1 in ascending order. Time O(n log n).
func Star[V cmp.Ordered](n int, id IDFunc[V]) Constructor[V] {
	return func(g core.Graph[V], cfg config) error {
		if err := validate(methodStar, n, minStarNodes, id); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddVertex(id(i))
		}
		for i := 1; i < n; i++ {
			addEdge(g, cfg, id, 0, i)
		}

		return nil
	}
}
