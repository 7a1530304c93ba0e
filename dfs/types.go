package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when the graph argument is nil.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an option received an invalid value.
	ErrOptionViolation = errors.New("dfs: invalid option value")
)

// Result holds the outcome of a depth-first traversal.
type Result[V comparable] struct {
	// Order lists the vertices in discovery (preorder) sequence.
	Order []V

	// Depth maps each discovered vertex to its depth on the DFS tree.
	Depth map[V]int

	// Parent maps each discovered vertex to its DFS-tree predecessor.
	// The start vertex has no entry.
	Parent map[V]V
}

// Options configures a depth-first traversal.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is first discovered. If it
	// returns an error, the traversal stops and the error is returned.
	OnVisit func(v V, depth int) error

	// MaxDepth, when positive, stops the descent below that depth.
	// Zero means unlimited.
	MaxDepth int

	// FilterNeighbor, when set, is consulted before descending into a
	// neighbor; returning false skips it.
	FilterNeighbor func(curr, neighbor V) bool

	err error
}

// DefaultOptions returns the zero-config baseline.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:            context.Background(),
		OnVisit:        func(V, int) error { return nil },
		FilterNeighbor: func(V, V) bool { return true },
	}
}

// Option mutates Options.
type Option[V comparable] func(*Options[V])

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds how deep the traversal descends. Zero means
// unlimited; negative values are rejected.
func WithMaxDepth[V comparable](limit int) Option[V] {
	return func(o *Options[V]) {
		if limit < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor installs a neighbor predicate.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnVisit registers a discovery hook; an error aborts the traversal.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
