// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts: node and edge
// lifecycle, parallel-edge keys, orientation of incident edges and cloning.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joycebyun/route-finder/core"
)

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.HasNode(1))

	g.AddNode(1)
	g.AddNode(1) // idempotent
	assert.True(t, g.HasNode(1))
	assert.Equal(t, 1, g.NodeCount())
}

func TestGraph_AddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(1, 2, -1)
	assert.ErrorIs(t, err, core.ErrNegativeLength)
	_, err = g.AddEdge(1, 2, math.NaN())
	assert.ErrorIs(t, err, core.ErrNegativeLength)
	_, err = g.AddEdge(1, 2, math.Inf(1))
	assert.ErrorIs(t, err, core.ErrNegativeLength)

	_, err = g.AddEdge(1, 1, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(1, 2, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 1, 1)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "reverse orientation is the same pair")

	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_AddEdge_ZeroLength(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(1, 2, 0)
	require.NoError(t, err)
}

func TestGraph_ParallelKeys(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())

	k0, err := g.AddEdge(1, 2, 10)
	require.NoError(t, err)
	k1, err := g.AddEdge(2, 1, 4)
	require.NoError(t, err)
	k2, err := g.AddEdge(1, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, []int{k0, k1, k2})

	fwd := g.Parallel(1, 2)
	require.Len(t, fwd, 3)
	for i, e := range fwd {
		assert.Equal(t, int64(1), e.From)
		assert.Equal(t, int64(2), e.To)
		assert.Equal(t, i, e.Key)
	}
	assert.Equal(t, []float64{10, 4, 7}, []float64{fwd[0].Length, fwd[1].Length, fwd[2].Length})

	back := g.Parallel(2, 1)
	require.Len(t, back, 3)
	assert.Equal(t, fwd[1].Flip(), back[1])

	assert.Empty(t, g.Parallel(1, 3))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_Edge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge(5, 3, 2.5)
	_, _ = g.AddEdge(5, 3, 1.5)

	e, err := g.Edge(3, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: 3, To: 5, Key: 1, Length: 1.5}, e)

	_, err = g.Edge(3, 5, 2)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.Edge(3, 9, 0)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_Incident_BothDirections(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge(1, 3, 1)
	_, _ = g.AddEdge(2, 1, 2) // stored 2→1, must be visible from 1
	_, _ = g.AddEdge(1, 2, 3)
	_, _ = g.AddEdge(1, 1, 4)

	inc, err := g.Incident(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 1, To: 1, Key: 0, Length: 4},
		{From: 1, To: 2, Key: 0, Length: 2},
		{From: 1, To: 2, Key: 1, Length: 3},
		{From: 1, To: 3, Key: 0, Length: 1},
	}, inc)

	// every stored edge shows up from both endpoints
	for _, e := range g.Edges() {
		fromU, err := g.Incident(e.From)
		require.NoError(t, err)
		assert.Contains(t, fromU, e)
		fromV, err := g.Incident(e.To)
		require.NoError(t, err)
		assert.Contains(t, fromV, e.Flip())
	}

	_, err = g.Incident(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_NeighborsAndDegree(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge(1, 9, 1)
	_, _ = g.AddEdge(1, 4, 1)
	_, _ = g.AddEdge(4, 1, 1)

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 9}, nbrs)

	deg, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	_, err = g.Degree(7)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_NodesAndEdgesSorted(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(9, 2, 1)
	_, _ = g.AddEdge(1, 5, 1)
	g.AddNode(0)

	assert.Equal(t, []int64{0, 1, 2, 5, 9}, g.Nodes())
	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, int64(1), edges[0].From)
	assert.Equal(t, int64(9), edges[1].From, "stored orientation is kept")
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(1, 2, 2)

	c := g.Clone()
	assert.Equal(t, g.Nodes(), c.Nodes())
	assert.Equal(t, g.Edges(), c.Edges())
	assert.True(t, c.Multigraph())

	_, err := c.AddEdge(2, 3, 5)
	require.NoError(t, err)
	assert.False(t, g.HasNode(3))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, c.EdgeCount())

	empty := g.CloneEmpty()
	assert.Equal(t, 2, empty.NodeCount())
	assert.Zero(t, empty.EdgeCount())
}

func TestGraph_InducedSubgraph(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(1, 2, 3)
	_, _ = g.AddEdge(2, 3, 1)

	sub := g.InducedSubgraph(map[int64]struct{}{1: {}, 2: {}, 99: {}})
	assert.Equal(t, []int64{1, 2}, sub.Nodes())
	assert.Equal(t, 2, sub.EdgeCount())
	e, err := sub.Edge(2, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, e.Length, 0)
}
