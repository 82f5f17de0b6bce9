// SPDX-License-Identifier: MIT
package routefinder

import (
	"errors"

	"github.com/joycebyun/route-finder/core"
)

// Sentinel errors returned by RouteFinder. Branch on them with errors.Is.
var (
	// ErrNilGraph indicates that New received a nil graph.
	ErrNilGraph = errors.New("routefinder: graph is nil")

	// ErrSourceNotFound indicates that the source node is not in the graph.
	ErrSourceNotFound = errors.New("routefinder: source node not found in graph")

	// ErrInvalidBudget indicates a negative, NaN or infinite distance budget.
	ErrInvalidBudget = errors.New("routefinder: distance budget must be finite and non-negative")

	// ErrNegativeLength indicates an edge with a negative or non-finite length.
	// core.Graph.AddEdge refuses such edges, so a graph that built cleanly
	// never carries one.
	ErrNegativeLength = core.ErrNegativeLength

	// ErrZeroLengthEdge indicates a zero-length edge inside the budget region,
	// on which the exhaustive search could bounce forever.
	ErrZeroLengthEdge = errors.New("routefinder: zero-length edge within budget")

	// ErrNotAPath indicates two consecutive path nodes that share no edge.
	ErrNotAPath = errors.New("routefinder: consecutive path nodes are not adjacent")
)
