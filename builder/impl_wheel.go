// SPDX-License-Identifier: MIT
// Package: route-finder/builder
//
// impl_wheel.go — implementation of Wheel(rim) constructor.
//
// Model:
//   • Hub node cfg.id(0); rim nodes cfg.id(1..rim) joined in a cycle.
//   • Spokes from the hub to rim node i (1-based) whenever i % spokeStride == 0.
//     With the default stride of 1 this is the classic wheel W_{rim+1}.
//   • Wheel(8) with WithSpokeStride(2) is the 3×3 block: a centre intersection,
//     eight surrounding intersections in a ring, and four straight streets from
//     the centre to the even-numbered ones.
//
// Contract:
//   • rim ≥ 3 (else ErrTooFewVertices).
//   • Rim edges first (1—2, …, rim—1), then spokes in increasing rim index.
//
// Complexity: O(rim) time, O(rim) extra space for the rim ID slice.

package builder

import (
	"fmt"

	"github.com/joycebyun/route-finder/core"
)

const (
	methodWheel = "Wheel"
	minWheelRim = 3
)

// Wheel returns a Constructor that builds a hub-and-rim wheel.
func Wheel(rim int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rim < minWheelRim {
			return fmt.Errorf("%s: rim=%d < min=%d: %w", methodWheel, rim, minWheelRim, ErrTooFewVertices)
		}

		hub := cfg.id(0)
		g.AddNode(hub)

		ids := make([]int64, rim)
		for i := range ids {
			ids[i] = cfg.id(i + 1)
		}
		if err := ring(g, cfg, ids); err != nil {
			return fmt.Errorf("%s: rim cycle: %w", methodWheel, err)
		}

		for i := 1; i <= rim; i++ {
			if i%cfg.spokeStride != 0 {
				continue
			}
			v := cfg.id(i)
			w := cfg.length()
			if _, err := g.AddEdge(hub, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d, len=%g): %w", methodWheel, hub, v, w, err)
			}
		}

		return nil
	}
}
