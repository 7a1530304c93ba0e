// Package core provides a generic, sorted adjacency-list graph container
// with undirected and directed variants over one shared storage model.
//
// The container G = (V,E) maps each vertex identifier to an ordered set of
// (neighbor, weight) entries. Both levels are red-black trees, so vertex
// iteration and per-vertex neighbor iteration always run in ascending key
// order, and the minimum vertex is an O(log V) lookup.
//
// Two edge policies share the storage:
//
//   - Undirected[V]: AddEdge records (u,v,w) and (v,u,w) together; the edge
//     count halves the stored arc total.
//   - Directed[V]: AddEdge records only (u,v,w) and guarantees v exists as
//     a vertex; every stored arc is one edge.
//
// Everything else — existence queries, weight lookup, degree, counts,
// iteration — is implemented once against the shared store and behaves
// identically for both variants. The Graph[V] interface names this common
// capability set; both *Undirected[V] and *Directed[V] satisfy it.
//
// Contract:
//
//	Every operation is total. A query on a missing vertex or edge returns a
//	sentinel — false, 0, the zero value of V, or an empty range — never an
//	error. In particular Weight(u,v)==0 does not distinguish a zero-weight
//	edge from a missing one; pair it with HasEdge when that matters.
//
// Core Methods:
//
//	// Mutation (insert/overwrite only; no deletion)
//	AddVertex(v V)                          // O(log V), idempotent
//	AddEdge(u, v V, opts ...EdgeOption)     // O(log V + log d), weight 1 unless WithWeight
//
//	// Query
//	HasVertex(v V) bool                     // O(log V)
//	HasEdge(u, v V) bool                    // O(log V + log d)
//	Weight(u, v V) int64                    // O(log V + log d), 0 when absent
//	Degree(v V) int                         // O(log V), 0 when absent
//	MinVertex() V                           // O(log V), zero value when empty
//	VertexCount() int                       // O(1)
//	EdgeCount() int                         // O(V)
//
//	// Snapshots
//	Vertices() []V                          // O(V), ascending
//	Neighbors(v V) []Edge[V]                // O(d), ascending by destination
//	Edges() []Edge[V]                       // O(V+E), every stored arc
//
//	// Iteration
//	Iterator() *VertexIterator[V]           // bidirectional cursor, before-first
//	IteratorAt(v V) *VertexIterator[V]      // cursor at v, exhausted when absent
//	Adjacent(v V) *NeighborIterator[V]      // neighbor cursor, empty when absent
//	All() / Backward() iter.Seq[V]          // read-only ascending / descending
//	AdjacentAll(v V) iter.Seq2[V, int64]    // read-only neighbor view
//
// Concurrency: none. The container performs no locking and is meant to be
// owned and mutated by one caller at a time; wrap it in your own RWMutex if
// you must share it. Iterators and cursors borrow live tree positions and
// are invalidated by any structural mutation, per ordered-map rules.
package core
