// SPDX-License-Identifier: MIT
// File: edge.go
// Role: the Edge value type and list-level helpers.
// Determinism:
//   - ShortestEdge returns the first minimal edge in input order.
//   - TotalLength sums left to right, so equal inputs give bit-identical totals.

package core

import (
	"fmt"
	"strconv"
)

// Edge identifies one traversal of a graph edge: From→To over the parallel edge
// Key, with a non-negative Length.
//
// Edge is a comparable value; two edges are equal iff all four fields are equal.
type Edge struct {
	// From is the node the traversal starts at.
	From int64

	// To is the node the traversal ends at.
	To int64

	// Key disambiguates parallel edges between the same pair of nodes.
	Key int

	// Length is the traversal cost (metres for street networks).
	Length float64
}

// Flip returns the same underlying edge traversed in the opposite direction.
func (e Edge) Flip() Edge {
	return Edge{From: e.To, To: e.From, Key: e.Key, Length: e.Length}
}

// String renders the edge as "(u, v, key, length)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d, %d, %s)", e.From, e.To, e.Key,
		strconv.FormatFloat(e.Length, 'f', -1, 64))
}

// TotalLength returns the sum of the lengths of edges.
// Complexity: O(len(edges)).
func TotalLength(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Length
	}

	return total
}

// ShortestEdge returns the edge with the smallest length. On ties the first
// minimal edge in edges wins. The boolean is false when edges is empty.
// Complexity: O(len(edges)).
func ShortestEdge(edges []Edge) (Edge, bool) {
	if len(edges) == 0 {
		return Edge{}, false
	}
	best := edges[0]
	for _, e := range edges[1:] {
		if e.Length < best.Length {
			best = e
		}
	}

	return best, true
}
