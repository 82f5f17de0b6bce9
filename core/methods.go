// SPDX-License-Identifier: MIT
// Package core: Graph method implementations
//
// This file provides thread-safe node and edge management on the Graph type
// defined in types.go. Adjacency is stored as a nested set
// adjacency[u][v] = struct{}{} mirrored for both endpoints, while the edges
// themselves live in per-pair buckets indexed by Key.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddNode inserts a node with the given ID into the Graph.
// If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(id)
}

func (g *Graph) addNodeLocked(id int64) {
	if _, exists := g.nodes[id]; exists {
		return
	}
	g.nodes[id] = struct{}{}
	g.adjacency[id] = make(map[int64]struct{})
}

// HasNode reports whether a node with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// AddEdge joins u and v with an undirected edge of the given length and
// returns its Key. Keys are assigned per node pair in insertion order
// (0, 1, 2, ...), so the first edge between a pair always has Key 0.
// Missing endpoints are created.
//
// Returns ErrNegativeLength, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int64, length float64) (int, error) {
	// 1) Length must be a finite, non-negative number.
	if length < 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return 0, fmt.Errorf("%w: %d-%d length=%v", ErrNegativeLength, u, v, length)
	}
	// 2) Loop constraint
	if u == v && !g.Looped() {
		return 0, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Multi-edge existence check
	p := pairOf(u, v)
	if !g.allowMulti && len(g.buckets[p]) > 0 {
		return 0, ErrMultiEdgeNotAllowed
	}

	// 4) Ensure endpoints exist, then store and mirror adjacency.
	g.addNodeLocked(u)
	g.addNodeLocked(v)
	key := len(g.buckets[p])
	g.buckets[p] = append(g.buckets[p], Edge{From: u, To: v, Key: key, Length: length})
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return key, nil
}

// Edge returns the edge (u, v, key) oriented u→v.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) Edge(u, v int64, key int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.buckets[pairOf(u, v)]
	if key < 0 || key >= len(bucket) {
		return Edge{}, fmt.Errorf("%w: (%d, %d, %d)", ErrEdgeNotFound, u, v, key)
	}

	return orient(bucket[key], u), nil
}

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.buckets[pairOf(u, v)]) > 0
}

// Parallel returns every edge joining u and v, oriented u→v and ordered by Key.
// The result is empty when u and v are not adjacent.
// Complexity: O(k) where k is the number of parallel edges.
func (g *Graph) Parallel(u, v int64) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.buckets[pairOf(u, v)]
	out := make([]Edge, len(bucket))
	for i, e := range bucket {
		out[i] = orient(e, u)
	}

	return out
}

// Incident returns every edge touching u, oriented u→other. Edges are ordered
// by neighbour ID ascending, then by Key. A self-loop appears once.
// Returns ErrNodeNotFound if u is absent.
// Complexity: O(d log d), where d is the number of distinct neighbours.
func (g *Graph) Incident(u int64) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[u]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	ids := sortedIDs(nbrs)

	var out []Edge
	for _, v := range ids {
		for _, e := range g.buckets[pairOf(u, v)] {
			out = append(out, orient(e, u))
		}
	}

	return out, nil
}

// Neighbors returns the distinct neighbour IDs of u in ascending order.
// Complexity: O(d log d).
func (g *Graph) Neighbors(u int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[u]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}

	return sortedIDs(nbrs), nil
}

// Degree returns the number of edges incident to u, counting every parallel
// edge and each self-loop once.
func (g *Graph) Degree(u int64) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[u]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	deg := 0
	for v := range nbrs {
		deg += len(g.buckets[pairOf(u, v)])
	}

	return deg, nil
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedIDs(g.nodes)
}

// Edges returns every stored edge in its insertion orientation, ordered by
// endpoint pair and then Key.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pairs := make([]pair, 0, len(g.buckets))
	for p := range g.buckets {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].lo != pairs[j].lo {
			return pairs[i].lo < pairs[j].lo
		}

		return pairs[i].hi < pairs[j].hi
	})

	out := make([]Edge, 0, g.edgeCount)
	for _, p := range pairs {
		out = append(out, g.buckets[p]...)
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges, counting parallel edges separately.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// orient returns e traversed away from u. u must be an endpoint of e.
func orient(e Edge, u int64) Edge {
	if e.From == u {
		return e
	}

	return e.Flip()
}

// sortedIDs returns the keys of set in ascending order.
func sortedIDs[V any](set map[int64]V) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
