// SPDX-License-Identifier: MIT
package routefinder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joycebyun/route-finder/core"
	"github.com/joycebyun/route-finder/route"
)

// cancelCheckInterval is how many search steps run between context checks.
const cancelCheckInterval = 1024

// frame is one level of the depth-first search: the viable edges out of the
// route's current last node and the index of the next one to try.
type frame struct {
	edges []core.Edge
	next  int
}

// Exhaustive enumerates every maximal feasible route from the source: routes
// that fit the budget and cannot be extended by any viable edge. Each maximal
// route ends at the source.
//
// Routes come out in depth-first order, with branches tried in IncidentEdges
// order. A single working route is extended and shrunk in place; only leaves
// are cloned into the result.
//
// The number of routes grows exponentially with the budget. ctx is checked
// periodically; on cancellation the partial result is discarded and ctx.Err()
// returned.
//
// Returns ErrZeroLengthEdge if a zero-length edge lies within half the budget
// of the source, since the search could then bounce on it forever.
func (rf *RouteFinder) Exhaustive(ctx context.Context) ([]*route.Route, error) {
	if err := rf.checkZeroLength(); err != nil {
		return nil, err
	}

	r := route.New(rf.source)
	first, err := rf.ViableEdges(r)
	if err != nil {
		return nil, err
	}

	var results []*route.Route
	stack := []frame{{edges: first}}
	for steps := 0; len(stack) > 0; steps++ {
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				rf.log.Debug("exhaustive search cancelled", slog.Int("found", len(results)))
				return nil, err
			}
		}

		top := &stack[len(stack)-1]
		if len(top.edges) == 0 {
			results = append(results, r.Clone())
		}
		if top.next == len(top.edges) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				r.PopEdge()
			}
			continue
		}

		e := top.edges[top.next]
		top.next++
		r.AddEdge(e)
		next, err := rf.ViableEdges(r)
		if err != nil {
			return nil, err
		}
		stack = append(stack, frame{edges: next})
	}

	rf.log.Debug("exhaustive search done", slog.Int("routes", len(results)))

	return results, nil
}

// checkZeroLength rejects zero-length edges between nodes a route can reach.
func (rf *RouteFinder) checkZeroLength() error {
	back, err := rf.returnDistances()
	if err != nil {
		return err
	}
	for _, e := range rf.g.Edges() {
		if e.Length != 0 {
			continue
		}
		_, from := back[e.From]
		_, to := back[e.To]
		if from && to {
			return fmt.Errorf("%w: %s", ErrZeroLengthEdge, e)
		}
	}

	return nil
}
