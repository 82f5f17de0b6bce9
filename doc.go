// SPDX-License-Identifier: MIT
// Package routes plans round trips on street networks: walks that leave a
// starting corner, pass as many other corners as they can, and come back home
// within a distance budget.
//
// What is in the box?
//
//	A thread-safe street graph and the searches built on it:
//		• Core primitives: corners, streets of given length, parallel streets
//		• Shortest paths: Dijkstra with cutoff and early exit
//		• Route search: feasibility, exhaustive enumeration, greedy planning, pruning
//		• Fixtures: paths, cycles, wheels, grids, text street maps, YAML edge lists
//
// Packages:
//
//	core/        — Graph and Edge, thread-safe building, querying and cloning
//	dijkstra/    — single-source distances and single-pair shortest paths
//	bfs/         — breadth-first search and connected components
//	route/       — the Route value: nodes, edges, distance, visited corners
//	routefinder/ — RouteFinder: viable edges, Exhaustive, Greedy, Prune
//	builder/     — deterministic generated street networks
//	gridgraph/   — street networks from 2D rasters and text maps
//	converters/  — gonum/graph interop and YAML edge lists
//	examples/    — loop_planner, a command-line walking-loop planner
//
// Quick ASCII example (the block used throughout the tests):
//
//	    1───2───3
//	    │   │   │
//	    8───0───4
//	    │   │   │
//	    7───6───5
//
//	represents a centre corner 0 with streets to 2, 4, 6 and 8 and a ring of
//	eight corners around it. With a budget of four blocks there are 32
//	maximal round trips from 0; the greedy planner picks 0→2→1→8→0.
package routes
