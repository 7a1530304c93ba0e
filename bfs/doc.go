// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path depths, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex. Because
// core.Graph iterates neighbors in ascending identifier order, the visit
// order is fully deterministic: among vertices at equal depth, smaller
// identifiers are visited first.
//
// Options:
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithMaxDepth(limit)     stop exploring beyond this depth (>0; 0 = no limit).
//   - WithFilterNeighbor(fn)  skip edges curr→neighbor when fn returns false.
//   - WithOnVisit(fn)         hook on visiting a vertex; an error aborts.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if the start vertex is absent.
//   - ErrOptionViolation      if an invalid option was supplied.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
