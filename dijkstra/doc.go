// SPDX-License-Identifier: MIT
// Package dijkstra provides the shortest-path queries the route search relies
// on: single-source distances (optionally bounded by a cutoff), single-pair
// path lengths and single-pair node sequences.
//
// Overview:
//
//   - Dijkstra computes the minimum-length path from a source node to all
//     reachable nodes in O((V + E) log V) time.
//   - It relies on a min-heap to always expand the next-closest node; ties are
//     broken by the smaller node ID, so paths are reproducible.
//   - Parallel edges are all relaxed, which means the shortest one wins.
//   - Unreachable nodes are simply absent from the distance map. The single-pair
//     helpers report them as ErrNoPath, which callers treat as +Inf.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[int64]float64, prev map[int64]int64, err error)
//	func PathLength(g *core.Graph, from, to int64, opts ...Option) (float64, error)
//	func ShortestPath(g *core.Graph, from, to int64, opts ...Option) ([]int64, float64, error)
//	func PathTo(prev map[int64]int64, source, target int64) []int64
//
//	  Options:
//	      • Source(int64):            required for Dijkstra, the starting node.
//	      • WithReturnPath():         also return the predecessor map.
//	      • WithMaxDistance(float64): only settle nodes within the cutoff.
//	      • WithTarget(int64):        stop once the target is settled.
//
// Thread safety:
//
//   - Dijkstra takes read locks on the graph for each query. Concurrent queries
//     on one graph are safe; concurrent mutation makes results unspecified.
package dijkstra
