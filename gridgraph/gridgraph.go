// SPDX-License-Identifier: MIT
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/joycebyun/route-finder/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadBlockLength.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.BlockLength < 0 || math.IsNaN(opts.BlockLength) || math.IsInf(opts.BlockLength, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadBlockLength, opts.BlockLength)
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Forward half of the neighbourhood only: each street is emitted once.
	offsets := [][2]int{{1, 0}, {0, 1}}
	if opts.Conn == Conn8 {
		offsets = append(offsets, [2]int{1, 1}, [2]int{-1, 1})
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		opts:            opts,
		neighborOffsets: offsets,
	}, nil
}

// ParseMap reads a text street map: one row per line, '.' for a corner and
// '#' for a blocked cell (a park, a river, a building). Blank lines are skipped.
//
//	...#
//	.#..
//	....
func ParseMap(r io.Reader, opts GridOptions) (*GridGraph, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]int, len(text))
		for x, ch := range []byte(text) {
			switch ch {
			case '.':
				row[x] = opts.Threshold
			case '#':
				row[x] = opts.Threshold - 1
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadCell, ch, line, x+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read map: %w", err)
	}

	return NewGridGraph(rows, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether (x,y) is inside the grid and counts as a corner.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.opts.Threshold
}

// NodeID maps (x,y) to its row-major node ID y*Width + x.
func (gg *GridGraph) NodeID(x, y int) int64 {
	return int64(y*gg.Width + x)
}

// Coordinate converts a node ID back to (x,y).
func (gg *GridGraph) Coordinate(id int64) (x, y int) {
	return int(id % int64(gg.Width)), int(id / int64(gg.Width))
}

// ToCoreGraph turns every walkable cell into a node and joins walkable
// neighbours with a street of BlockLength (BlockLength·√2 on diagonals).
// Blocked cells are left out entirely.
// Complexity: O(W×H×d), Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Walkable(x, y) {
				g.AddNode(gg.NodeID(x, y))
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Walkable(nx, ny) {
					continue
				}
				length := gg.opts.BlockLength
				if d[0] != 0 && d[1] != 0 {
					length *= math.Sqrt2
				}
				if _, err := g.AddEdge(gg.NodeID(x, y), gg.NodeID(nx, ny), length); err != nil {
					return nil, fmt.Errorf("gridgraph: street (%d,%d)-(%d,%d): %w", x, y, nx, ny, err)
				}
			}
		}
	}

	return g, nil
}
