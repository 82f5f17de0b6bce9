// SPDX-License-Identifier: MIT
package dijkstra

import (
	"fmt"

	"github.com/joycebyun/route-finder/core"
)

// PathTo rebuilds the node sequence source → … → target from a predecessor map
// returned with WithReturnPath. It returns nil when target is not reachable
// through prev.
// Complexity: O(path length).
func PathTo(prev map[int64]int64, source, target int64) []int64 {
	path := []int64{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
		if len(path) > len(prev)+1 {
			// a well-formed predecessor tree never holds a cycle
			return nil
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathLength returns the shortest-path distance between from and to.
// Extra options (typically WithMaxDistance) are applied after Source and Target.
// Returns ErrNoPath when to cannot be reached.
func PathLength(g *core.Graph, from, to int64, opts ...Option) (float64, error) {
	all := append([]Option{Source(from), WithTarget(to)}, opts...)
	dist, _, err := Dijkstra(g, all...)
	if err != nil {
		return 0, err
	}
	d, ok := dist[to]
	if !ok {
		return 0, fmt.Errorf("%w: %d → %d", ErrNoPath, from, to)
	}

	return d, nil
}

// ShortestPath returns one shortest node sequence from → … → to and its length.
// Returns ErrNoPath when to cannot be reached.
func ShortestPath(g *core.Graph, from, to int64, opts ...Option) ([]int64, float64, error) {
	all := append([]Option{Source(from), WithTarget(to), WithReturnPath()}, opts...)
	dist, prev, err := Dijkstra(g, all...)
	if err != nil {
		return nil, 0, err
	}
	d, ok := dist[to]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d → %d", ErrNoPath, from, to)
	}

	return PathTo(prev, from, to), d, nil
}
