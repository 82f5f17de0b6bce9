// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for the constructors in the
// builder package, verifying topology, counts, IDs and lengths.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joycebyun/route-finder/builder"
	"github.com/joycebyun/route-finder/core"
)

func neighbors(t *testing.T, g *core.Graph, u int64) []int64 {
	t.Helper()
	nbrs, err := g.Neighbors(u)
	require.NoError(t, err)

	return nbrs
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		bopts       []builder.BuilderOption
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int64{1}, neighbors(t, g, 0))
				assert.Equal(t, []int64{0, 2}, neighbors(t, g, 1))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int64{1, 4}, neighbors(t, g, 0))
			},
		},
		{
			name: "Wheel(6)", ctor: builder.Wheel(6), wantV: 7, wantE: 12,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, neighbors(t, g, 0))
				assert.Equal(t, []int64{0, 2, 6}, neighbors(t, g, 1))
			},
		},
		{
			name:  "Wheel(8)/stride2",
			bopts: []builder.BuilderOption{builder.WithSpokeStride(2)},
			ctor:  builder.Wheel(8), wantV: 9, wantE: 12,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int64{2, 4, 6, 8}, neighbors(t, g, 0))
				assert.Equal(t, []int64{2, 8}, neighbors(t, g, 1))
				assert.Equal(t, []int64{0, 1, 3}, neighbors(t, g, 2))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int64{0, 2, 4}, neighbors(t, g, 1))
				assert.Equal(t, []int64{2, 4}, neighbors(t, g, 5))
			},
		},
		{
			name:  "Grid(1,2)/firstID",
			bopts: []builder.BuilderOption{builder.WithFirstID(100)},
			ctor:  builder.Grid(1, 2), wantV: 2, wantE: 1,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int64{100, 101}, g.Nodes())
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.bopts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeLength, e.Length)
			}
			tc.sampleCheck(t, g)
		})
	}
}

func TestBuilders_TooFew(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Path(1)":   builder.Path(1),
		"Cycle(2)":  builder.Cycle(2),
		"Wheel(2)":  builder.Wheel(2),
		"Grid(0,3)": builder.Grid(0, 3),
	} {
		_, err := builder.BuildGraph(nil, nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestLink_ParallelEdge(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithMultiEdges()}, nil,
		builder.Path(2), builder.Link(0, 1, 0.5),
	)
	require.NoError(t, err)
	par := g.Parallel(0, 1)
	require.Len(t, par, 2)
	assert.Equal(t, 0.5, par[1].Length)

	_, err = builder.BuildGraph(nil, nil, builder.Path(2), builder.Link(0, 1, 0.5))
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestLengthFn(t *testing.T) {
	assert.Panics(t, func() { builder.ConstantLength(-1) })
	assert.Panics(t, func() { builder.UniformLength(-1, 2) })
	assert.Panics(t, func() { builder.UniformLength(3, 2) })
	assert.Panics(t, func() { builder.WithSpokeStride(0) })
	assert.Panics(t, func() { builder.WithLength(nil) })

	u := builder.UniformLength(2, 5)
	assert.Equal(t, 2.0, u(nil), "nil rng falls back to min")

	a, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithLength(u)}, builder.Grid(3, 3))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithLength(u)}, builder.Grid(3, 3))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same lengths")
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Length, 2.0)
		assert.Less(t, e.Length, 5.0)
	}
}
