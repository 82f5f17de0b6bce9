// SPDX-License-Identifier: MIT
package routefinder

import "github.com/joycebyun/route-finder/route"

// Prune returns a copy of r with its useless loops cut out. A loop is the
// stretch between two visits of the same node; it is useless when every node
// on it had already been reached before the loop began. Loops that reach new
// ground are kept.
//
// The result starts where r starts, ends where r ends, is never longer than r,
// and has every node on it marked visited. r itself is not modified.
//
//	[0 2 0 2 0]     -> [0 2 0]
//	[0 2 3 2 3 2 0] -> [0 2 3 2 0]
//	[0 2 3 4 0]     -> [0 2 3 4 0]
func Prune(r *route.Route) *route.Route {
	out := route.New(r.Source())
	// firstSeen[n] is the index in out.Nodes where n first appeared.
	firstSeen := map[int64]int{r.Source(): 0}

	for _, e := range r.Edges {
		k := lastIndex(out.Nodes, e.To)
		if k >= 0 && !reachesNewGround(out.Nodes[k+1:], k, firstSeen) {
			for len(out.Nodes) > k+1 {
				out.PopEdge()
			}
			continue
		}

		out.AddEdge(e)
		if _, ok := firstSeen[e.To]; !ok {
			firstSeen[e.To] = len(out.Nodes) - 1
		}
	}

	for _, n := range out.Nodes {
		out.MarkVisited(n)
	}

	return out
}

// lastIndex returns the index of the last occurrence of n in nodes, or -1.
func lastIndex(nodes []int64, n int64) int {
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] == n {
			return i
		}
	}

	return -1
}

// reachesNewGround reports whether any node of loop was first seen after index k.
func reachesNewGround(loop []int64, k int, firstSeen map[int64]int) bool {
	for _, n := range loop {
		if firstSeen[n] > k {
			return true
		}
	}

	return false
}
