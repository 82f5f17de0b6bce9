// SPDX-License-Identifier: MIT
package routefinder

import (
	"fmt"

	"github.com/joycebyun/route-finder/core"
)

// EdgesFromPath turns a node path into the edges that walk it. Where several
// parallel edges join two consecutive nodes, the shortest is chosen, the
// lowest Key winning ties.
//
// A path of fewer than two nodes yields no edges. Returns ErrNotAPath if two
// consecutive nodes share no edge.
func (rf *RouteFinder) EdgesFromPath(path []int64) ([]core.Edge, error) {
	if len(path) < 2 {
		return nil, nil
	}

	out := make([]core.Edge, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		e, ok := core.ShortestEdge(rf.g.Parallel(u, v))
		if !ok {
			return nil, fmt.Errorf("%w: %d and %d", ErrNotAPath, u, v)
		}
		out = append(out, e)
	}

	return out, nil
}
