// Package builder: sentinel errors.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers branch with errors.Is(err, ErrX).
//   - Sentinels are never wrapped with formatted strings at definition
//     site; implementations attach context via %w.
package builder

import "errors"

// ErrNilGraph indicates Build received a nil graph.
// Usage: if errors.Is(err, ErrNilGraph) { /* supply a graph */ }.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrNilConstructor indicates Build received a nil Constructor.
// Usage: if errors.Is(err, ErrNilConstructor) { /* drop the nil entry */ }.
var ErrNilConstructor = errors.New("builder: nil constructor")

// ErrTooFewVertices indicates that n is smaller than the allowed minimum
// for the requested constructor (Path needs 2, Cycle 3, Complete 1,
// Star 2).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNilIDFunc indicates a constructor was given a nil identifier mapping.
// Usage: if errors.Is(err, ErrNilIDFunc) { /* pass builder.Index or your own */ }.
var ErrNilIDFunc = errors.New("builder: id func is nil")
