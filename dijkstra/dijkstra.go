// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// undirected street-network graph of package core.
//
// Notes on implementation choices:
//
//   - Lengths are validated by core.AddEdge; relaxation re-checks the sign anyway.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We stop early once Target (if any) is settled.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by node ID so results are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/joycebyun/route-finder/core"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to every node reachable within Options.MaxDistance.
//
// Returns:
//
//   - dist: map from node ID to its shortest distance. Only settled nodes are
//     present: a missing key means unreachable (or beyond the cutoff).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means one shortest path to v goes through u. The source has no entry.
//   - err:  error if inputs are invalid or if a negative length is met.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source and, when set, Target (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the explored region only.
//   - Space: O(V + E) over the explored region only.
func Dijkstra(g *core.Graph, opts ...Option) (map[int64]float64, map[int64]int64, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if !cfg.HasSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if cfg.HasTarget && !g.HasNode(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int64]float64),
		best:    make(map[int64]float64),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int64]int64)
		r.tentativePrev = make(map[int64]int64)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options

	dist map[int64]float64 // settled (final) distances
	best map[int64]float64 // best tentative distances, including settled ones
	prev map[int64]int64   // settled predecessors

	tentativePrev map[int64]int64
	pq            nodePQ
}

// init pushes Source=0 into the heap.
func (r *runner) init() {
	r.best[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// node with the minimum distance and relaxes its incident edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - Target has been settled.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Skip stale heap entries.
		if _, done := r.dist[u]; done {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}

		// Settle u.
		r.dist[u] = d
		if r.prev != nil {
			if p, ok := r.tentativePrev[u]; ok {
				r.prev[u] = p
			}
		}
		if cfg.HasTarget && u == cfg.Target {
			break
		}

		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge incident to u and attempts to improve distances to
// its neighbours. Parallel edges are all relaxed, so the shortest one wins.
func (r *runner) relax(u int64, du float64) error {
	edges, err := r.g.Incident(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get incident edges of %d: %w", u, err)
	}

	for _, e := range edges {
		if e.Length < 0 {
			return fmt.Errorf("%w: edge %s", ErrNegativeWeight, e)
		}
		v := e.To
		if _, done := r.dist[v]; done {
			continue
		}

		newDist := du + e.Length
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" keeps the first predecessor found on equal distances.
		if old, seen := r.best[v]; seen && newDist >= old {
			continue
		}

		r.best[v] = newDist
		if r.tentativePrev != nil {
			r.tentativePrev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int64
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then node ID.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller distance first; equal distances by smaller node ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
