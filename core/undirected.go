// Package core: the undirected edge policy.
package core

import (
	"cmp"
	"iter"
)

// Undirected is a weighted, undirected graph over identifiers of type V.
// It reuses the shared store for every common operation and contributes
// symmetric edge insertion and halved edge counting.
type Undirected[V cmp.Ordered] struct {
	store[V]
}

// compile-time check: both variants satisfy the shared capability set.
var _ Graph[int] = (*Undirected[int])(nil)

// NewUndirected returns an undirected graph populated from the given edge
// records, applying the same insertion semantics as repeated AddEdge calls.
// With no arguments it is simply the empty graph. Use E(u,v) for
// weight-1 records and W(u,v,w) for explicit weights.
func NewUndirected[V cmp.Ordered](edges ...Edge[V]) *Undirected[V] {
	g := &Undirected[V]{store: newStore[V]()}
	for _, e := range edges {
		g.insert(e.From, e.To, e.Weight)
	}

	return g
}

// CollectUndirected drains seq to exhaustion into a new undirected graph.
// The sequence is consumed exactly once.
func CollectUndirected[V cmp.Ordered](seq iter.Seq[Edge[V]]) *Undirected[V] {
	g := NewUndirected[V]()
	for e := range seq {
		g.insert(e.From, e.To, e.Weight)
	}

	return g
}

// insert records both arcs of the undirected edge (u,v) with equal weight.
// The two writes are the symmetric-insertion invariant: for every stored
// (u,v,w) the mirror (v,u,w) exists with the same weight.
func (g *Undirected[V]) insert(u, v V, w int64) {
	g.ensure(u).Put(v, w)
	g.ensure(v).Put(u, w)
}

// AddEdge inserts or overwrites the undirected edge (u,v), creating both
// endpoints as vertices if absent. The weight defaults to 1; override with
// WithWeight. Re-inserting with a different weight overwrites both
// directions. Self-loops are permitted and store a single arc.
// Complexity: O(log V + log d)
func (g *Undirected[V]) AddEdge(u, v V, opts ...EdgeOption) {
	g.insert(u, v, resolveWeight(opts))
}

// EdgeCount returns the number of distinct undirected edges: the stored
// arc total divided by two. Correct only while the symmetric-insertion
// invariant holds, i.e. for graphs mutated exclusively through AddEdge;
// asymmetric tampering silently desynchronizes the count.
// Complexity: O(V)
func (g *Undirected[V]) EdgeCount() int {
	return g.arcCount() / 2
}
