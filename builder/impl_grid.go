// SPDX-License-Identifier: MIT
// Package: route-finder/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal street grid with 4-neighbourhood.
//   • Node (r, c) has ID cfg.id(r*cols + c) (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r, c) in row-major order, emit Right then Bottom edges when present.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/joycebyun/route-finder/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		at := func(r, c int) int64 { return cfg.id(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(at(r, c))
			}
		}

		add := func(u, v int64) error {
			w := cfg.length()
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d, len=%g): %w", methodGrid, u, v, w, err)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := add(at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := add(at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
