// Package builder provides deterministic topology constructors for
// core graphs: Path, Cycle, Complete, and Star.
//
// One orchestrator, Build, applies any number of constructors in order to
// a caller-supplied graph, so fixtures compose:
//
//	g := core.NewUndirected[int]()
//	err := builder.Build(g, nil,
//	    builder.Path(4, builder.Index),
//	    builder.Star(4, builder.Index),
//	)
//
// Vertices are indexed 0..n-1 and mapped to the graph's identifier type
// through an IDFunc; builder.Index is the identity mapping for int graphs.
// Edge weights default to core.DefaultWeight and can be derived from the
// endpoint indices with WithWeightFunc.
//
// Determinism: constructors add vertices in ascending index order and emit
// edges in a fixed order, so the same inputs always produce the same graph.
//
// Error policy: only package-level sentinels are exposed; implementations
// attach context with %w, and callers branch with errors.Is. Constructors
// validate parameters early and never panic.
package builder
