package dfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/adjacency/core"
)

// frame is a single entry on the explicit traversal stack. The parent
// is carried on the frame and committed only when the frame is popped,
// so a vertex reachable along several paths gets the parent it was
// actually discovered through.
type frame[V comparable] struct {
	v      V
	parent V
	depth  int
	root   bool
}

// walker carries the traversal state so the phases stay small.
type walker[V cmp.Ordered] struct {
	graph   core.Graph[V]
	opts    Options[V]
	res     *Result[V]
	visited map[V]bool
	stack   []frame[V]
}

// DFS performs a preorder depth-first traversal of g from start.
//
// It returns the visit order together with per-vertex depth and parent
// maps. Unvisited neighbors are explored smallest identifier first.
// DFS returns ErrGraphNil for a nil graph, ErrStartVertexNotFound when
// start is absent, ErrOptionViolation for bad options, the context's
// error on cancellation, and any error produced by the OnVisit hook.
//
// Complexity: O(V + E) time, O(V) auxiliary space.
func DFS[V cmp.Ordered](g core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := &walker[V]{
		graph: g,
		opts:  DefaultOptions[V](),
		res: &Result[V]{
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
		visited: make(map[V]bool),
	}
	for _, opt := range opts {
		opt(&w.opts)
	}
	if w.opts.err != nil {
		return nil, w.opts.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	w.stack = append(w.stack, frame[V]{v: start, root: true})

	return w.res, w.loop()
}

// loop pops frames until the stack drains, an error occurs, or the
// context is done. A vertex may sit on the stack more than once; only
// the first pop counts.
func (w *walker[V]) loop() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[top.v] {
			continue
		}
		w.visited[top.v] = true
		w.res.Depth[top.v] = top.depth
		if !top.root {
			w.res.Parent[top.v] = top.parent
		}

		if err := w.visit(top); err != nil {
			return err
		}
		w.pushNeighbors(top)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V]) visit(f frame[V]) error {
	w.res.Order = append(w.res.Order, f.v)
	if err := w.opts.OnVisit(f.v, f.depth); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %v: %w", f.v, err)
	}

	return nil
}

// pushNeighbors stacks the admissible neighbors in descending order so
// the smallest identifier is popped, and therefore visited, first.
func (w *walker[V]) pushNeighbors(f frame[V]) {
	nextDepth := f.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}

	var next []V
	for nbr := range w.graph.AdjacentAll(f.v) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(f.v, nbr) {
			continue
		}
		next = append(next, nbr)
	}
	for i := len(next) - 1; i >= 0; i-- {
		w.stack = append(w.stack, frame[V]{v: next[i], parent: f.v, depth: nextDepth})
	}
}
