// SPDX-License-Identifier: MIT
// Package: route-finder/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • firstID     = 0                   (node IDs 0, 1, 2, ...)
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • lengthFn    = ConstantLength(DefaultEdgeLength)
//   • spokeStride = 1                   (wheel spokes to every rim node)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// firstID is the node ID of index 0; index i maps to firstID+i.
	firstID int64
	// RNG for stochastic lengths; nil means "no randomness".
	rng *rand.Rand
	// Length generator for edges.
	lengthFn LengthFn
	// Wheel spokes join the hub to every spokeStride-th rim node.
	spokeStride int
}

const defaultSpokeStride = 1

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		firstID:     0,
		rng:         nil,
		lengthFn:    DefaultLengthFn,
		spokeStride: defaultSpokeStride,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a node ID.
func (c builderConfig) id(i int) int64 {
	return c.firstID + int64(i)
}

// length draws the next edge length.
func (c builderConfig) length() float64 {
	return c.lengthFn(c.rng)
}
