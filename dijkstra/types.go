// SPDX-License-Identifier: MIT
// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on street-network graphs.
//
// Options:
//
//	– Source:       ID of the starting node (must be present in the graph).
//	– ReturnPath:   if true, return the predecessor map for path reconstruction.
//	– MaxDistance:  optional cutoff; nodes farther than this are not reported.
//	– Target:       optional node at which the search stops once it is settled.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no Source option was given.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source (or target) node does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge length is met during relaxation.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrNoPath          if the target cannot be reached within the cutoff.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source node was configured.
	ErrEmptySource = errors.New("dijkstra: source node is not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target node does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeWeight indicates that a negative edge length was met.
	ErrNegativeWeight = errors.New("dijkstra: negative edge length encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the target is unreachable from the source
	// (within MaxDistance, when set).
	ErrNoPath = errors.New("dijkstra: no path between nodes")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node ID; HasSource records whether it was set, since 0 is a valid ID.
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – cutoff on reported distances. Must be ≥ 0. Default is +Inf (no cap).
// Target      – when HasTarget is set, stop as soon as Target is settled.
type Options struct {
	Source      int64   // The ID of the source node
	HasSource   bool    // Whether Source was configured
	ReturnPath  bool    // Whether to return the predecessor map
	MaxDistance float64 // Maximum distance to explore
	Target      int64   // Optional early-exit node
	HasTarget   bool    // Whether Target was configured
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node. Must be given to every Dijkstra call.
func Source(id int64) Option {
	return func(o *Options) {
		o.Source = id
		o.HasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets the distance cutoff. Nodes whose shortest distance
// exceeds max are neither settled nor reported.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		// Panic to signal invalid configuration early.
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithTarget stops the search once id has been settled. Distances reported for
// other nodes are still exact, but the map may be incomplete.
func WithTarget(id int64) Option {
	return func(o *Options) {
		o.Target = id
		o.HasTarget = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no source, no predecessor map, no cutoff, no target.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
