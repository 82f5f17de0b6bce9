// SPDX-License-Identifier: MIT
// Package core provides the thread-safe, in-memory street-network Graph used by
// the route search, together with the Edge value type.
//
// The Graph G = (V, E) is:
//
//   - Undirected: an edge stored u→v is reported from both endpoints.
//   - Weighted: every edge carries a finite, non-negative float64 Length.
//   - Optionally a multigraph (WithMultiEdges): parallel edges between the same
//     pair are addressed by a per-pair Key assigned in insertion order.
//   - Optionally looped (WithLoops): self-loops are stored once.
//
// Core Methods:
//
//	AddNode(id int64)                              // O(1)
//	HasNode(id int64) bool                         // O(1)
//	AddEdge(u, v int64, length float64) (int, error) // O(1), returns Key
//	Edge(u, v int64, key int) (Edge, error)        // O(1), oriented u→v
//	Parallel(u, v int64) []Edge                    // O(k), oriented u→v, by Key
//	Incident(u int64) ([]Edge, error)              // O(d log d), oriented u→*
//	Neighbors(u int64) ([]int64, error)            // O(d log d), unique, sorted
//	Nodes() []int64                                // O(V log V)
//	Edges() []Edge                                 // O(E log E)
//	Clone() *Graph                                 // O(V+E) deep copy
//	InducedSubgraph(keep) *Graph                   // O(V+E)
//
// Edge helpers:
//
//	Edge.Flip()            // (v, u, key, length)
//	TotalLength(edges)     // left-to-right sum
//	ShortestEdge(edges)    // first minimal edge
//
// Iteration is deterministic: every slice-returning query is sorted by node ID
// and Key, which the route search relies on for reproducible tie-breaks.
//
// Errors:
//
//	ErrNodeNotFound        – missing node
//	ErrEdgeNotFound        – missing (u, v, key)
//	ErrNegativeLength      – negative, NaN or infinite length
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
