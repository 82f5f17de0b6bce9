// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves every Key, so (u, v, key) addresses the same edge on both graphs.
// Concurrency:
//   - Read lock on the source; the clone shares no memory with it.

package core

// CloneEmpty returns a new Graph with identical configuration and nodes, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked()
}

func (g *Graph) cloneEmptyLocked() *Graph {
	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	for id := range g.nodes {
		clone.addNodeLocked(id)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes, edges and adjacency.
// Mutating the clone never affects g and vice versa.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmptyLocked()
	for p, bucket := range g.buckets {
		cp := make([]Edge, len(bucket))
		copy(cp, bucket)
		clone.buckets[p] = cp
		clone.adjacency[p.lo][p.hi] = struct{}{}
		clone.adjacency[p.hi][p.lo] = struct{}{}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// InducedSubgraph returns a new Graph holding only the nodes in keep that
// exist in g, and every edge whose endpoints are both kept. Keys are preserved.
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(keep map[int64]struct{}) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)
	for id := range keep {
		if _, ok := g.nodes[id]; ok {
			out.addNodeLocked(id)
		}
	}
	for p, bucket := range g.buckets {
		_, okLo := out.nodes[p.lo]
		_, okHi := out.nodes[p.hi]
		if !okLo || !okHi {
			continue
		}
		cp := make([]Edge, len(bucket))
		copy(cp, bucket)
		out.buckets[p] = cp
		out.adjacency[p.lo][p.hi] = struct{}{}
		out.adjacency[p.hi][p.lo] = struct{}{}
		out.edgeCount += len(cp)
	}

	return out
}
