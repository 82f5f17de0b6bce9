// SPDX-License-Identifier: MIT
package routefinder

import (
	"fmt"

	"github.com/joycebyun/route-finder/core"
	"github.com/joycebyun/route-finder/route"
)

// IncidentEdges returns every edge leaving node, parallel edges included,
// oriented node→neighbour and ordered by neighbour ID then Key.
func (rf *RouteFinder) IncidentEdges(node int64) ([]core.Edge, error) {
	edges, err := rf.g.Incident(node)
	if err != nil {
		return nil, fmt.Errorf("routefinder: incident edges: %w", err)
	}

	return edges, nil
}

// ViableEdges returns the edges leaving r.Last() that keep r feasible: after
// taking one, the shortest way back to the source still fits in the budget.
//
// Order follows IncidentEdges, so repeated calls give identical results.
func (rf *RouteFinder) ViableEdges(r *route.Route) ([]core.Edge, error) {
	edges, err := rf.IncidentEdges(r.Last())
	if err != nil {
		return nil, err
	}
	back, err := rf.returnDistances()
	if err != nil {
		return nil, err
	}

	var out []core.Edge
	for _, e := range edges {
		if rf.fits(r.Distance, e, back) {
			out = append(out, e)
		}
	}

	return out, nil
}

// IsViable reports whether appending e to r keeps r feasible. e must leave
// r.Last() and match an edge of the snapshot in endpoints, Key and Length;
// otherwise ErrNotAPath is returned.
func (rf *RouteFinder) IsViable(r *route.Route, e core.Edge) (bool, error) {
	if e.From != r.Last() {
		return false, fmt.Errorf("%w: edge %s does not leave %d", ErrNotAPath, e, r.Last())
	}
	stored, err := rf.g.Edge(e.From, e.To, e.Key)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrNotAPath, err)
	}
	if stored != e {
		return false, fmt.Errorf("%w: edge %s, graph has %s", ErrNotAPath, e, stored)
	}
	back, err := rf.returnDistances()
	if err != nil {
		return false, err
	}

	return rf.fits(r.Distance, e, back), nil
}

// fits is the budget test d + len(e) + dist(e.To, source) <= max.
// A destination missing from back is beyond half the budget and never fits.
func (rf *RouteFinder) fits(d float64, e core.Edge, back map[int64]float64) bool {
	rf.stats.ViabilityChecks++
	ret, ok := back[e.To]

	return ok && d+e.Length+ret <= rf.maxDistance
}
