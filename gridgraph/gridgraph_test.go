// SPDX-License-Identifier: MIT
package gridgraph_test

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/joycebyun/route-finder/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and ParseMap
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects malformed input.
func TestNewGridGraph_Errors(t *testing.T) {
	bad := gridgraph.DefaultGridOptions()
	bad.BlockLength = -5
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"NegativeBlock", [][]int{{1}}, bad, gridgraph.ErrBadBlockLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_Copies ensures later edits to the input do not leak in.
func TestNewGridGraph_Copies(t *testing.T) {
	grid := [][]int{{1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}
	grid[0][1] = 0
	if !gg.Walkable(1, 0) {
		t.Error("input mutation leaked into GridGraph")
	}
}

func TestParseMap(t *testing.T) {
	gg, err := gridgraph.ParseMap(strings.NewReader("\n..#\n.#.\n\n"), gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}
	if gg.Width != 3 || gg.Height != 2 {
		t.Fatalf("size = %dx%d; want 3x2", gg.Width, gg.Height)
	}
	for _, c := range []struct {
		x, y int
		want bool
	}{{0, 0, true}, {2, 0, false}, {1, 1, false}, {2, 1, true}, {3, 0, false}, {0, -1, false}} {
		if got := gg.Walkable(c.x, c.y); got != c.want {
			t.Errorf("Walkable(%d,%d) = %v; want %v", c.x, c.y, got, c.want)
		}
	}

	if _, err := gridgraph.ParseMap(strings.NewReader("..\n.x\n"), gridgraph.DefaultGridOptions()); !errors.Is(err, gridgraph.ErrBadCell) {
		t.Errorf("bad cell: want ErrBadCell, got %v", err)
	}
	if _, err := gridgraph.ParseMap(strings.NewReader("..\n.\n"), gridgraph.DefaultGridOptions()); !errors.Is(err, gridgraph.ErrNonRectangular) {
		t.Errorf("ragged map: want ErrNonRectangular, got %v", err)
	}
}

func TestNodeIDCoordinate(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			id := gg.NodeID(x, y)
			if gx, gy := gg.Coordinate(id); gx != x || gy != y {
				t.Errorf("Coordinate(NodeID(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
	if id := gg.NodeID(2, 1); id != 5 {
		t.Errorf("NodeID(2,1) = %d; want 5", id)
	}
}

//----------------------------------------------------------------------------//
// ToCoreGraph
//----------------------------------------------------------------------------//

// TestToCoreGraph_Conn4 checks that blocked cells and their streets vanish.
func TestToCoreGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.ParseMap(strings.NewReader("..\n#.\n"), gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}
	g, err := gg.ToCoreGraph()
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{0, 1, 3}; !reflect.DeepEqual(g.Nodes(), want) {
		t.Errorf("Nodes = %v; want %v", g.Nodes(), want)
	}
	if g.EdgeCount() != 2 || !g.HasEdge(0, 1) || !g.HasEdge(1, 3) {
		t.Errorf("edges = %v; want 0-1 and 1-3", g.Edges())
	}
	if e := g.Parallel(1, 3)[0]; e.Length != 100 {
		t.Errorf("length = %v; want 100", e.Length)
	}
}

// TestToCoreGraph_Conn8 counts streets on a full 3×3 map with diagonals.
func TestToCoreGraph_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	opts.BlockLength = 10
	gg, err := gridgraph.ParseMap(strings.NewReader("...\n...\n...\n"), opts)
	if err != nil {
		t.Fatal(err)
	}
	g, err := gg.ToCoreGraph()
	if err != nil {
		t.Fatal(err)
	}
	// 12 orthogonal + 8 diagonal streets
	if g.EdgeCount() != 20 {
		t.Errorf("EdgeCount = %d; want 20", g.EdgeCount())
	}
	if d, _ := g.Degree(4); d != 8 {
		t.Errorf("Degree(centre) = %d; want 8", d)
	}
	e := g.Parallel(0, 4)
	if len(e) != 1 || math.Abs(e[0].Length-10*math.Sqrt2) > 1e-12 {
		t.Errorf("diagonal = %v; want one street of 10√2", e)
	}
}
