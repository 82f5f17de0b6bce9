// SPDX-License-Identifier: MIT
package routefinder

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/joycebyun/route-finder/bfs"
	"github.com/joycebyun/route-finder/core"
	"github.com/joycebyun/route-finder/dijkstra"
)

// RouteFinder searches for budget-bounded round trips from one source node.
//
// It owns a private snapshot of the connected component of the input graph
// that contains the source; the caller's graph is never read again after New
// returns. A RouteFinder is meant for one goroutine at a time. The
// return-distance cache is built lazily under a sync.Once.
type RouteFinder struct {
	g           *core.Graph
	source      int64
	maxDistance float64
	log         *slog.Logger

	cacheOnce sync.Once
	toSource  map[int64]float64 // shortest distance to source, for nodes within maxDistance/2
	cacheErr  error

	stats Stats
}

// Stats counts the work a RouteFinder has done so far.
type Stats struct {
	// ShortestPathQueries is the number of Dijkstra runs issued.
	ShortestPathQueries int
	// ViabilityChecks is the number of edges tested against the budget.
	ViabilityChecks int
}

// New builds a RouteFinder for routes that start at source and never exceed
// maxDistance in total length.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrInvalidBudget if maxDistance is negative, NaN or infinite.
//   - ErrSourceNotFound if source is not a node of g.
//
// Edge lengths need no check here: core.Graph.AddEdge already refused any
// negative or non-finite length with ErrNegativeLength.
//
// Complexity: O(V + E) for the component search and snapshot.
func New(g *core.Graph, source int64, maxDistance float64, opts ...Option) (*RouteFinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxDistance < 0 || math.IsNaN(maxDistance) || math.IsInf(maxDistance, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBudget, maxDistance)
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}

	// Nodes outside the source's component can never be on a route.
	reach, err := bfs.Component(g, source)
	if err != nil {
		return nil, fmt.Errorf("routefinder: snapshot: %w", err)
	}
	snapshot := g.InducedSubgraph(reach)

	cfg := newConfig(opts...)

	return &RouteFinder{
		g:           snapshot,
		source:      source,
		maxDistance: maxDistance,
		log:         cfg.logger.With(slog.Int64("source", source), slog.Float64("max_distance", maxDistance)),
	}, nil
}

// Source returns the fixed start node.
func (rf *RouteFinder) Source() int64 { return rf.source }

// MaxDistance returns the distance budget.
func (rf *RouteFinder) MaxDistance() float64 { return rf.maxDistance }

// Graph returns the owned snapshot. Callers must not mutate it.
func (rf *RouteFinder) Graph() *core.Graph { return rf.g }

// Stats returns a copy of the work counters.
func (rf *RouteFinder) Stats() Stats { return rf.stats }

// returnDistances returns the memoized shortest distances from every node
// within maxDistance/2 back to the source. The graph is undirected, so one
// Dijkstra run from the source answers all of them.
//
// Nodes farther than maxDistance/2 are absent. None of them can lie on a
// feasible route: reaching such a node already costs more than half the
// budget, and getting back costs as much again.
func (rf *RouteFinder) returnDistances() (map[int64]float64, error) {
	rf.cacheOnce.Do(func() {
		rf.toSource, _, rf.cacheErr = dijkstra.Dijkstra(rf.g,
			dijkstra.Source(rf.source),
			dijkstra.WithMaxDistance(rf.maxDistance/2),
		)
		rf.stats.ShortestPathQueries++
		if rf.cacheErr != nil {
			rf.cacheErr = fmt.Errorf("routefinder: source distances: %w", rf.cacheErr)
			return
		}
		rf.log.Debug("source distance cache built", slog.Int("nodes", len(rf.toSource)))
	})

	return rf.toSource, rf.cacheErr
}
