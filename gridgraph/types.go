// SPDX-License-Identifier: MIT
package gridgraph

// Connectivity selects which neighbouring cells a street joins: orthogonal
// (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 joins N, E, S and W neighbours.
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal neighbours, with length BlockLength·√2.
	Conn8
)

// GridOptions contains tunable parameters for street generation.
type GridOptions struct {
	// Threshold is the minimum cell value that counts as a walkable corner.
	Threshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// BlockLength is the length of an orthogonal street.
	BlockLength float64
}

// DefaultGridOptions returns Threshold=1, Conn4 and 100 m blocks.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Threshold:   1,
		Conn:        Conn4,
		BlockLength: 100,
	}
}

// GridGraph treats a 2D integer raster as a street map. It is immutable once built.
// CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	opts            GridOptions
	neighborOffsets [][2]int
}
