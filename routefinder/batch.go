// SPDX-License-Identifier: MIT
package routefinder

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/joycebyun/route-finder/core"
	"github.com/joycebyun/route-finder/route"
)

// GreedyFromSources runs Greedy once per source, concurrently, with the same
// budget and options. routes[i] belongs to sources[i].
//
// Every source gets its own RouteFinder and snapshot of g, so g may be read by
// other goroutines meanwhile. The first error cancels the remaining work and
// is returned wrapped with its source.
func GreedyFromSources(ctx context.Context, g *core.Graph, sources []int64, maxDistance float64, opts ...Option) ([]*route.Route, error) {
	routes := make([]*route.Route, len(sources))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		i, src := i, src
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rf, err := New(g, src, maxDistance, opts...)
			if err != nil {
				return fmt.Errorf("source %d: %w", src, err)
			}
			r, err := rf.Greedy()
			if err != nil {
				return fmt.Errorf("source %d: %w", src, err)
			}
			routes[i] = r

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return routes, nil
}
