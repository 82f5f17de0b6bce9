// SPDX-License-Identifier: MIT
package routefinder

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/joycebyun/route-finder/core"
	"github.com/joycebyun/route-finder/dijkstra"
	"github.com/joycebyun/route-finder/route"
)

// Greedy builds one feasible route by always heading for the nearest node not
// yet visited.
//
// Each step takes, in order of preference:
//  1. the shortest viable edge to an unvisited neighbour;
//  2. the shortest path to the nearest unvisited node that still leaves room
//     to return (ties by node ID);
//  3. the shortest path to the nearest visited node that does, so the route
//     keeps moving;
//
// and stops when none applies. The result is deterministic for a given graph,
// source and budget. It ends at the source whenever any edge was taken.
func (rf *RouteFinder) Greedy() (*route.Route, error) {
	back, err := rf.returnDistances()
	if err != nil {
		return nil, err
	}

	r := route.New(rf.source)
	r.MarkVisited(rf.source)
	for {
		viable, err := rf.ViableEdges(r)
		if err != nil {
			return nil, err
		}
		if len(viable) == 0 {
			break
		}

		var fresh []core.Edge
		for _, e := range viable {
			if !r.Visited(e.To) {
				fresh = append(fresh, e)
			}
		}
		if e, ok := core.ShortestEdge(fresh); ok {
			r.AddEdge(e)
			r.MarkVisited(e.To)
			continue
		}

		moved, err := rf.detour(r, back)
		if err != nil {
			return nil, err
		}
		if !moved {
			break
		}
	}

	rf.log.Debug("greedy route built",
		slog.Int("edges", r.Len()),
		slog.Int("visited", r.VisitedCount()),
		slog.Float64("distance", r.Distance),
	)

	return r, nil
}

// detour extends r along a shortest path to the best candidate reachable within
// the remaining budget. It reports false when no candidate exists.
//
// A visited fallback must lie at positive distance or be the source, so every
// detour makes progress even across zero-length edges.
func (rf *RouteFinder) detour(r *route.Route, back map[int64]float64) (bool, error) {
	cur := r.Last()
	remaining := rf.maxDistance - r.Distance
	if remaining < 0 {
		remaining = 0
	}
	dist, prev, err := dijkstra.Dijkstra(rf.g,
		dijkstra.Source(cur),
		dijkstra.WithMaxDistance(remaining),
		dijkstra.WithReturnPath(),
	)
	rf.stats.ShortestPathQueries++
	if err != nil {
		return false, fmt.Errorf("routefinder: detour from %d: %w", cur, err)
	}

	candidates := make([]int64, 0, len(dist))
	for n := range dist {
		if n != cur {
			candidates = append(candidates, n)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if dist[a] != dist[b] {
			return dist[a] < dist[b]
		}

		return a < b
	})

	var (
		target      int64
		found       bool
		fallback    int64
		hasFallback bool
	)
	for _, n := range candidates {
		ret, ok := back[n]
		if !ok || r.Distance+dist[n]+ret > rf.maxDistance {
			continue
		}
		if !r.Visited(n) {
			target, found = n, true
			break
		}
		if !hasFallback && (dist[n] > 0 || n == rf.source) {
			fallback, hasFallback = n, true
		}
	}
	if !found {
		if !hasFallback {
			return false, nil
		}
		target = fallback
	}

	edges, err := rf.EdgesFromPath(dijkstra.PathTo(prev, cur, target))
	if err != nil {
		return false, err
	}
	for _, e := range edges {
		r.AddEdge(e)
		r.MarkVisited(e.To)
	}
	rf.log.Debug("greedy detour",
		slog.Int64("from", cur),
		slog.Int64("to", target),
		slog.Bool("revisit", !found),
	)

	return true, nil
}
