// SPDX-License-Identifier: MIT
package converters

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/joycebyun/route-finder/core"
)

// FromGonum copies an undirected weighted multigraph into a new core.Graph
// that permits parallel edges and self-loops. Line weights become lengths.
//
// Between each pair of nodes, lines are added in ascending line ID order, so
// keys follow line IDs. Returns core.ErrNegativeLength (wrapped) for a
// negative or non-finite weight.
// Complexity: O(V log V + E log E).
func FromGonum(src graph.WeightedUndirectedMultigraph) (*core.Graph, error) {
	dst := core.NewGraph(core.WithMultiEdges(), core.WithLoops())

	nodes := graph.NodesOf(src.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	for _, n := range nodes {
		dst.AddNode(n.ID())
	}

	for _, u := range nodes {
		uid := u.ID()
		nbrs := graph.NodesOf(src.From(uid))
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].ID() < nbrs[j].ID() })
		for _, v := range nbrs {
			vid := v.ID()
			if vid < uid {
				continue // pair already copied from the other side
			}
			lines := graph.WeightedLinesOf(src.WeightedLinesBetween(uid, vid))
			sort.Slice(lines, func(i, j int) bool { return lines[i].ID() < lines[j].ID() })
			for _, l := range lines {
				if _, err := dst.AddEdge(uid, vid, l.Weight()); err != nil {
					return nil, fmt.Errorf("converters: line %d (%d—%d): %w", l.ID(), uid, vid, err)
				}
			}
		}
	}

	return dst, nil
}

// ToGonum copies g into a gonum undirected weighted multigraph. Every parallel
// edge becomes its own line, with line IDs assigned in core.Graph.Edges order.
// Self-loops are skipped.
// Complexity: O(V + E log E).
func ToGonum(g *core.Graph) *multi.WeightedUndirectedGraph {
	dst := multi.NewWeightedUndirectedGraph()
	for _, id := range g.Nodes() {
		dst.AddNode(multi.Node(id))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		dst.SetWeightedLine(dst.NewWeightedLine(multi.Node(e.From), multi.Node(e.To), e.Length))
	}

	return dst
}
