// SPDX-License-Identifier: MIT
// Package core defines the owned street-network Graph and the Edge value type,
// and provides thread-safe primitives for building, querying and cloning graphs.
//
// This file declares Graph, GraphOption, the sentinel errors and the NewGraph
// constructor.
//
// Errors:
//
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested (u, v, key) edge does not exist.
//	ErrNegativeLength      - edge length is negative, NaN or infinite.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeLength indicates an edge length that is negative or not a finite number.
	ErrNegativeLength = errors.New("core: edge length must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same pair of nodes.
// Parallel edges are told apart by their per-pair Key.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (an edge from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// pair is the unordered endpoint pair used to address a parallel-edge bucket.
// lo <= hi always holds.
type pair struct {
	lo, hi int64
}

func pairOf(u, v int64) pair {
	if u > v {
		return pair{lo: v, hi: u}
	}

	return pair{lo: u, hi: v}
}

// Graph is an undirected, weighted multigraph of a street network.
//
// Nodes are int64 identifiers (OSM node IDs fit naturally). Each stored edge
// keeps the orientation it was inserted with; queries re-orient edges so that
// an edge stored u→v is visible from both endpoints.
//
// mu protects every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nodes map[int64]struct{}
	// adjacency[u][v] is present iff at least one edge joins u and v.
	// Loops are stored once, under adjacency[u][u].
	adjacency map[int64]map[int64]struct{}
	// buckets[{lo,hi}][key] is the edge with that key, in its stored orientation.
	buckets map[pair][]Edge

	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph allows neither loops nor multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[int64]struct{}),
		adjacency: make(map[int64]map[int64]struct{}),
		buckets:   make(map[pair][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
