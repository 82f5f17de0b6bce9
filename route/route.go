// SPDX-License-Identifier: MIT
// Package route defines Route, a path under construction through a street
// network: the visited node sequence, the traversed edges, the running
// distance, and the set of nodes marked visited by the search driving it.
package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joycebyun/route-finder/core"
)

// ErrBrokenInvariant is returned by Validate when a Route's fields disagree.
var ErrBrokenInvariant = errors.New("route: broken invariant")

// Route is a mutable path starting at a source node.
//
// Invariants, held at all times:
//   - Nodes[0] is the source.
//   - len(Nodes) == len(Edges)+1.
//   - Nodes[i+1] == Edges[i].To and Edges[i].From == Nodes[i].
//   - Distance == core.TotalLength(Edges), bit for bit.
//
// Callers may read the exported fields but must only change them through
// AddEdge and PopEdge. A Route is not safe for concurrent use.
type Route struct {
	Nodes    []int64
	Edges    []core.Edge
	Distance float64

	// prefix[i] is the distance after the first i edges. Popping restores the
	// previous prefix instead of subtracting, so push/pop never drifts.
	prefix  []float64
	visited map[int64]bool
}

// New returns a route holding only source, with distance 0 and nothing visited.
func New(source int64) *Route {
	return &Route{
		Nodes:   []int64{source},
		prefix:  []float64{0},
		visited: make(map[int64]bool),
	}
}

// Source returns the first node of the route.
func (r *Route) Source() int64 { return r.Nodes[0] }

// Last returns the node the route currently ends at.
func (r *Route) Last() int64 { return r.Nodes[len(r.Nodes)-1] }

// Len returns the number of edges traversed.
func (r *Route) Len() int { return len(r.Edges) }

// AddEdge appends e to the route: e.To joins Nodes, e joins Edges and
// e.Length is added to Distance.
// Panics if e does not start at Last(): that is a logic fault in the caller.
func (r *Route) AddEdge(e core.Edge) {
	if e.From != r.Last() {
		panic(fmt.Sprintf("route: AddEdge %s does not start at last node %d", e, r.Last()))
	}
	r.Nodes = append(r.Nodes, e.To)
	r.Edges = append(r.Edges, e)
	r.Distance += e.Length
	r.prefix = append(r.prefix, r.Distance)
}

// PopEdge removes and returns the last edge, dropping its end node and
// restoring Distance to exactly its value before the matching AddEdge.
// Panics on a route with no edges.
func (r *Route) PopEdge() core.Edge {
	n := len(r.Edges)
	if n == 0 {
		panic("route: PopEdge on a route with no edges")
	}
	e := r.Edges[n-1]
	r.Edges = r.Edges[:n-1]
	r.Nodes = r.Nodes[:n]
	r.prefix = r.prefix[:n]
	r.Distance = r.prefix[n-1]

	return e
}

// MarkVisited flags node n as visited. Flags are never cleared.
func (r *Route) MarkVisited(n int64) { r.visited[n] = true }

// Visited reports whether node n has been marked visited.
func (r *Route) Visited(n int64) bool { return r.visited[n] }

// VisitedCount returns how many nodes are marked visited.
func (r *Route) VisitedCount() int { return len(r.visited) }

// DistinctNodes returns the number of distinct nodes in Nodes.
func (r *Route) DistinctNodes() int {
	seen := make(map[int64]struct{}, len(r.Nodes))
	for _, n := range r.Nodes {
		seen[n] = struct{}{}
	}

	return len(seen)
}

// Closed reports whether the route ends where it started.
func (r *Route) Closed() bool { return r.Last() == r.Source() }

// Clone returns a deep copy; the copy shares no memory with r.
func (r *Route) Clone() *Route {
	c := &Route{
		Nodes:    append([]int64(nil), r.Nodes...),
		Edges:    append([]core.Edge(nil), r.Edges...),
		Distance: r.Distance,
		prefix:   append([]float64(nil), r.prefix...),
		visited:  make(map[int64]bool, len(r.visited)),
	}
	for n, v := range r.visited {
		c.visited[n] = v
	}

	return c
}

// Validate checks every Route invariant and reports the first violation.
func (r *Route) Validate() error {
	if len(r.Nodes) == 0 {
		return fmt.Errorf("%w: no source node", ErrBrokenInvariant)
	}
	if len(r.Nodes) != len(r.Edges)+1 {
		return fmt.Errorf("%w: %d nodes for %d edges", ErrBrokenInvariant, len(r.Nodes), len(r.Edges))
	}
	for i, e := range r.Edges {
		if e.From != r.Nodes[i] || e.To != r.Nodes[i+1] {
			return fmt.Errorf("%w: edge %d is %s between nodes %d and %d",
				ErrBrokenInvariant, i, e, r.Nodes[i], r.Nodes[i+1])
		}
	}
	if total := core.TotalLength(r.Edges); total != r.Distance {
		return fmt.Errorf("%w: distance %v, edges sum to %v", ErrBrokenInvariant, r.Distance, total)
	}

	return nil
}

// String renders the node sequence, e.g. "[0 2 3 4 0]".
func (r *Route) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range r.Nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", n)
	}
	b.WriteByte(']')

	return b.String()
}

// MaxCoverage returns the routes that visit the largest number of distinct
// nodes, preserving their input order.
func MaxCoverage(routes []*Route) []*Route {
	best := 0
	for _, r := range routes {
		if d := r.DistinctNodes(); d > best {
			best = d
		}
	}
	var out []*Route
	for _, r := range routes {
		if r.DistinctNodes() == best {
			out = append(out, r)
		}
	}

	return out
}
