// SPDX-License-Identifier: MIT
// Package: route-finder/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds nodes cfg.id(0..n-1) and ring edges i—(i+1)%n in ascending i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/joycebyun/route-finder/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = cfg.id(i)
		}
		if err := ring(g, cfg, ids); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		return nil
	}
}

// ring adds ids as nodes and closes them into a cycle in index order.
func ring(g *core.Graph, cfg builderConfig, ids []int64) error {
	for _, id := range ids {
		g.AddNode(id)
	}
	n := len(ids)
	for i := 0; i < n; i++ {
		u, v := ids[i], ids[(i+1)%n]
		w := cfg.length()
		if _, err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("AddEdge(%d—%d, len=%g): %w", u, v, w, err)
		}
	}

	return nil
}
