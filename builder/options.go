// SPDX-License-Identifier: MIT
// Package: route-finder/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithFirstID shifts every generated node ID so index 0 maps to id.
func WithFirstID(id int64) BuilderOption {
	return func(c *builderConfig) {
		c.firstID = id
	}
}

// WithRand provides an explicit RNG for stochastic lengths. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLength overrides the per-edge length generator. Panics on nil.
func WithLength(fn LengthFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLength(nil)")
	}
	return func(c *builderConfig) {
		c.lengthFn = fn
	}
}

// WithSpokeStride makes Wheel join the hub only to rim nodes whose 1-based
// index is a multiple of k. Panics if k < 1.
func WithSpokeStride(k int) BuilderOption {
	if k < 1 {
		panic(fmt.Sprintf("builder: WithSpokeStride(%d): stride must be ≥ 1", k))
	}
	return func(c *builderConfig) {
		c.spokeStride = k
	}
}
