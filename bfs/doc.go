// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph, returning
// street-count distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing number of streets from a start node.
//   - Result holds Order (visit sequence), Depth and Parent.
//   - OnVisit hook may abort the search with an error.
//   - WithFilterNeighbor skips individual neighbours; WithMaxDepth bounds depth.
//   - Component returns the start's connected component, which routefinder
//     uses to keep its snapshot down to the part of the city a walk can reach.
//
// Determinism
//
//	core.Graph.Neighbors returns IDs in ascending order and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, home,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id int64, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNodeNotFound   if the start node does not exist.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
