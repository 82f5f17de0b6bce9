// SPDX-License-Identifier: MIT
// Package builder provides helper functions and types for configuring
// edge-length distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeLength is the length assigned to each edge when no custom
// LengthFn is provided.
const DefaultEdgeLength float64 = 1

// LengthFn produces an edge length given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type LengthFn func(rng *rand.Rand) float64

// DefaultLengthFn always returns DefaultEdgeLength.
func DefaultLengthFn(_ *rand.Rand) float64 {
	return DefaultEdgeLength
}

// ConstantLength returns a LengthFn that always yields value.
// Panics if value < 0.
func ConstantLength(value float64) LengthFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantLength: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformLength returns a LengthFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields min to keep a deterministic fallback.
func UniformLength(min, max float64) LengthFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformLength: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
