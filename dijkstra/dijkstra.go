package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/katalvlaran/adjacency/core"
)

// pqItem is one heap entry. Stale entries are possible because the
// heap is never decreased in place; they are skipped on pop.
type pqItem[V comparable] struct {
	v    V
	dist int64
}

// nodePQ is a min-heap of pqItem ordered by distance.
type nodePQ[V comparable] []pqItem[V]

func (pq nodePQ[V]) Len() int            { return len(pq) }
func (pq nodePQ[V]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[V]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[V]) Push(x interface{}) { *pq = append(*pq, x.(pqItem[V])) }
func (pq *nodePQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// runner carries the state of one shortest-path computation.
type runner[V cmp.Ordered] struct {
	graph core.Graph[V]
	opts  Options
	res   *Result[V]
	done  map[V]bool
	pq    nodePQ[V]
}

// Dijkstra computes shortest distances from source to every reachable
// vertex of g. All edge weights must be non-negative; the graph is
// scanned up front and ErrNegativeWeight is returned before any work
// is done if one is found.
//
// Dijkstra returns ErrGraphNil for a nil graph, ErrSourceNotFound when
// source is absent, ErrOptionViolation for bad options, and the
// context's error on cancellation.
//
// Complexity: O((V + E) log V) time, O(V) auxiliary space.
func Dijkstra[V cmp.Ordered](g core.Graph[V], source V, opts ...Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	r := &runner[V]{
		graph: g,
		opts:  DefaultOptions(),
		res: &Result[V]{
			Dist:   make(map[V]int64),
			Parent: make(map[V]V),
		},
		done: make(map[V]bool),
	}
	for _, opt := range opts {
		opt(&r.opts)
	}
	if r.opts.err != nil {
		return nil, r.opts.err
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if err := r.checkWeights(); err != nil {
		return nil, err
	}

	r.res.Dist[source] = 0
	heap.Push(&r.pq, pqItem[V]{v: source})

	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// checkWeights rejects graphs with negative-weight edges.
func (r *runner[V]) checkWeights() error {
	for _, e := range r.graph.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("edge %v->%v has weight %d: %w",
				e.From, e.To, e.Weight, ErrNegativeWeight)
		}
	}

	return nil
}

// process drains the heap, settling the closest unsettled vertex each
// round and relaxing its outgoing edges.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(pqItem[V])
		if r.done[item.v] {
			continue // stale heap entry
		}
		r.done[item.v] = true

		r.relaxNeighbors(item)
	}

	return nil
}

// relaxNeighbors tries to improve the tentative distance of every
// neighbor of the settled vertex.
func (r *runner[V]) relaxNeighbors(item pqItem[V]) {
	for nbr, w := range r.graph.AdjacentAll(item.v) {
		if r.done[nbr] {
			continue
		}
		cand := item.dist + w
		if r.opts.MaxDistance > 0 && cand > r.opts.MaxDistance {
			continue
		}
		if best, seen := r.res.Dist[nbr]; seen && best <= cand {
			continue
		}
		r.res.Dist[nbr] = cand
		r.res.Parent[nbr] = item.v
		heap.Push(&r.pq, pqItem[V]{v: nbr, dist: cand})
	}
}
