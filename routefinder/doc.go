// SPDX-License-Identifier: MIT
// Package routefinder plans round trips on a street network: closed walks that
// start and end at one source node and stay within a total distance budget.
//
// Overview:
//
//   - New takes a snapshot of a core.Graph, a source node and a budget.
//   - A route is feasible when its length plus the shortest way back to the
//     source fits the budget. ViableEdges lists the edges that keep a route
//     feasible; they are the only moves either search makes.
//   - Exhaustive enumerates every maximal feasible route by depth-first
//     backtracking. Its output is exponential in the budget. A zero-length
//     edge within half the budget of the source makes it fail with
//     ErrZeroLengthEdge, since the search could bounce on it forever.
//   - Greedy builds one route by always heading for the nearest unvisited node.
//   - Prune cuts loops that reach no new node out of an existing route.
//   - GreedyFromSources plans greedy routes for many sources concurrently.
//
// Shortest distances back to the source come from one Dijkstra run, bounded at
// half the budget and memoized on first use. On an undirected graph with
// non-negative lengths no node beyond that radius can lie on a feasible route.
//
// Example:
//
//	rf, err := routefinder.New(g, home, 5000)
//	if err != nil { ... }
//	r, err := rf.Greedy()
//	fmt.Println(r, r.Distance)
//
// Thread safety:
//
//	A RouteFinder is not safe for concurrent use. Create one per goroutine;
//	each owns its snapshot, so many may share the same input graph.
package routefinder
