package planner

import (
	"context"
	"sort"

	"github.com/vk/riskgridgo/internal/ctxlog"
	"github.com/vk/riskgridgo/internal/dag"
	"github.com/vk/riskgridgo/internal/risk"
)

// Plan resolves every reachable target into a route, cheapest target first.
// After each committed route the risk of every link along it is zeroed in
// the store, so later searches treat those links as free. The returned
// routes are in resolution order, which is generally not the order the
// targets were supplied in. Targets that remain unreachable are simply
// absent from the result.
//
// Plan is the sole writer of the store between searches; searches and
// zeroing never overlap.
func Plan(ctx context.Context, g *dag.Graph, store *risk.Store, targets []int) []Route {
	logger := ctxlog.FromContext(ctx)

	pending := make(map[int]bool, len(targets))
	for _, t := range targets {
		pending[t] = true
	}
	logger.Debug("Planning started.", "target_count", len(pending))

	routes := make([]Route, 0, len(pending))
	for len(pending) > 0 {
		remaining := make([]int, 0, len(pending))
		for t := range pending {
			remaining = append(remaining, t)
		}
		sort.Ints(remaining)

		// Scanning targets in ascending ID order with a strict comparison
		// makes the smallest ID win among equal-risk targets.
		var winner *Route
		for _, t := range remaining {
			r, ok := findBestRoute(g, store, t)
			if !ok {
				continue
			}
			if winner == nil || r.Risk < winner.Risk {
				winner = &r
			}
		}

		if winner == nil {
			logger.Warn("Remaining targets are unreachable from every root.", "targets", remaining)
			break
		}

		logger.Info("Route committed.",
			"target", winner.Target,
			"risk", winner.Risk,
			"hops", len(winner.Path)-1,
		)
		routes = append(routes, *winner)

		// The committed route's links become free for every later search.
		for i := 0; i+1 < len(winner.Path); i++ {
			store.Zero(winner.Path[i], winner.Path[i+1])
		}
		delete(pending, winner.Target)
	}

	logger.Debug("Planning finished.", "route_count", len(routes))
	return routes
}
