// SPDX-License-Identifier: MIT
package routefinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joycebyun/route-finder/core"
	"github.com/joycebyun/route-finder/route"
	"github.com/joycebyun/route-finder/routefinder"
)

func targets(edges []core.Edge) []int64 {
	out := make([]int64, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}

func TestIncidentEdges(t *testing.T) {
	rf := newFinder(t, wheel(t), 0, 4)

	edges, err := rf.IncidentEdges(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4, 6, 8}, targets(edges))
	for _, e := range edges {
		assert.Equal(t, int64(0), e.From)
	}

	edges, err = rf.IncidentEdges(3)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, targets(edges))

	_, err = rf.IncidentEdges(99)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestViableEdges(t *testing.T) {
	rf := newFinder(t, wheel(t), 0, 4)

	cases := []struct {
		name string
		path []int64
		want []int64
	}{
		{"from source", []int64{0}, []int64{2, 4, 6, 8}},
		{"corner after two blocks", []int64{0, 2, 3}, []int64{2, 4}},
		{"ring after one block", []int64{0, 2}, []int64{0, 1, 3}},
		{"must head home", []int64{0, 2, 3, 4}, []int64{0}},
		{"budget spent", []int64{0, 2, 3, 4, 0}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := walk(t, rf, tc.path...)
			edges, err := rf.ViableEdges(r)
			require.NoError(t, err)
			if tc.want == nil {
				assert.Empty(t, edges)
				return
			}
			assert.Equal(t, tc.want, targets(edges))
			for _, e := range edges {
				ok, err := rf.IsViable(r, e)
				require.NoError(t, err)
				assert.True(t, ok)
			}
		})
	}
}

// TestViableEdges_FarNodes checks that nodes beyond half the budget are never
// offered, whatever the route so far.
func TestViableEdges_FarNodes(t *testing.T) {
	rf := newFinder(t, wheel(t), 0, 2)

	edges, err := rf.ViableEdges(walk(t, rf, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, targets(edges))
}

func TestIsViable(t *testing.T) {
	rf := newFinder(t, wheel(t), 0, 4)
	r := walk(t, rf, 0, 2, 3)

	ok, err := rf.IsViable(r, core.Edge{From: 3, To: 4, Length: 1})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rf.IsViable(walk(t, rf, 0, 2, 3, 4), core.Edge{From: 4, To: 5, Length: 1})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = rf.IsViable(r, core.Edge{From: 2, To: 1, Length: 1})
	assert.ErrorIs(t, err, routefinder.ErrNotAPath)
}

func TestIsViable_EdgeNotInGraph(t *testing.T) {
	rf := newFinder(t, wheel(t), 0, 4)
	r := walk(t, rf, 0, 2, 3)

	for _, e := range []core.Edge{
		{From: 3, To: 4, Key: 0, Length: 1.5}, // wrong length
		{From: 3, To: 4, Key: 1, Length: 1},   // no parallel edge
		{From: 3, To: 0, Key: 0, Length: 1},   // no such street
	} {
		ok, err := rf.IsViable(r, e)
		assert.ErrorIs(t, err, routefinder.ErrNotAPath, "edge %s", e)
		assert.False(t, ok)
	}
	assert.Zero(t, rf.Stats().ViabilityChecks)
}

func TestViableEdges_UnknownLastNode(t *testing.T) {
	rf := newFinder(t, wheel(t), 0, 4)
	_, err := rf.ViableEdges(route.New(99))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
