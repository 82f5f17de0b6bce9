// SPDX-License-Identifier: MIT
// Package: route-finder/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes cfg.id(0..n-1) and edges (i-1)—i for i=1..n-1 in increasing order.
//   - Lengths come from cfg.lengthFn.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/joycebyun/route-finder/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddNode(cfg.id(i))
		}
		for i := 1; i < n; i++ {
			u, v := cfg.id(i-1), cfg.id(i)
			w := cfg.length()
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d, len=%g): %w", methodPath, u, v, w, err)
			}
		}

		return nil
	}
}
