// SPDX-License-Identifier: MIT
// Package builder provides "functional-options"-style constructors for
// deterministic street-network fixtures used by tests, examples and
// benchmarks of the route search.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): the single orchestrator.
//   - Constructors: Path(n), Cycle(n), Wheel(rim), Grid(rows, cols), Link(u, v, len).
//   - Options:
//     – WithFirstID:     shift generated node IDs.
//     – WithLength:      per-edge length generator (ConstantLength, UniformLength).
//     – WithSeed/WithRand: deterministic RNG for stochastic lengths.
//     – WithSpokeStride: sparse wheel spokes.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors (ErrTooFewVertices) and never panic.
//   - Same options and constructor order ⇒ identical graphs, keys included.
//
// Example (the 3×3 block used throughout the routefinder tests):
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithMultiEdges()},
//	    []builder.BuilderOption{builder.WithSpokeStride(2)},
//	    builder.Wheel(8),
//	)
package builder
