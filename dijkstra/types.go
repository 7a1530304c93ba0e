package dijkstra

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when the graph argument is nil.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrNegativeWeight is returned when the graph contains an edge
	// with a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

	// ErrOptionViolation is returned when an option received an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option value")
)

// Result holds the shortest-path tree rooted at the source.
type Result[V comparable] struct {
	// Dist maps each reachable vertex to its shortest distance from
	// the source. Unreachable vertices have no entry.
	Dist map[V]int64

	// Parent maps each reachable vertex to its predecessor on a
	// shortest path. The source has no entry.
	Parent map[V]V
}

// Path reconstructs the shortest path from the source to target by
// walking the Parent map. It returns nil when target was not reached.
//
// Complexity: O(len(path)).
func (r *Result[V]) Path(target V) []V {
	if _, ok := r.Dist[target]; !ok {
		return nil
	}
	var rev []V
	v := target
	for {
		rev = append(rev, v)
		p, ok := r.Parent[v]
		if !ok {
			break
		}
		v = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// Options configures a shortest-path run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDistance, when positive, prunes the search: vertices whose
	// shortest distance exceeds it are reported as unreachable.
	// Zero means unlimited.
	MaxDistance int64

	err error
}

// DefaultOptions returns the zero-config baseline.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Option mutates Options.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance bounds the search radius. Zero means unlimited;
// negative values are rejected.
func WithMaxDistance(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDistance = limit
	}
}
