package planner

import (
	"container/heap"
	"slices"

	"github.com/vk/riskgridgo/internal/dag"
	"github.com/vk/riskgridgo/internal/risk"
)

// Route is one resolved route from a grid root to a target sensor.
type Route struct {
	Target int     `json:"target"`
	Risk   float64 `json:"risk"`
	Path   []int   `json:"path"`
}

// candidate is one frontier state of the search: the risk accumulated so
// far, the sensor the search stands on, and the exact node sequence taken to
// get there. The sequence doubles as the tie-break key, so it is carried in
// full rather than reconstructed from parent pointers.
type candidate struct {
	risk float64
	node int
	path []int
}

// frontier is a min-heap of candidates using the lazy-decrease-key pattern:
// superseded entries stay in the heap and are discarded when popped.
type frontier []*candidate

func (f frontier) Len() int { return len(f) }

// Less orders by accumulated risk ascending; equal risks fall back to
// lexicographic comparison of the node sequences, which prefers routes that
// reach smaller sensor IDs earlier.
func (f frontier) Less(i, j int) bool {
	if f[i].risk != f[j].risk {
		return f[i].risk < f[j].risk
	}
	return slices.Compare(f[i].path, f[j].path) < 0
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*candidate)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

// findBestRoute runs the search from every root of the grid simultaneously
// and returns the lowest-risk route to the target under the current risk
// values, or false if no root can reach it.
func findBestRoute(g *dag.Graph, store *risk.Store, target int) (Route, bool) {
	// best holds the best-known risk per sensor; absent means infinity.
	best := make(map[int]float64, g.Len())
	visited := make(map[int]bool, g.Len())

	f := make(frontier, 0, g.Len())
	heap.Init(&f)
	for _, root := range g.Roots() {
		best[root] = 0
		heap.Push(&f, &candidate{risk: 0, node: root, path: []int{root}})
	}

	for f.Len() > 0 {
		c := heap.Pop(&f).(*candidate)

		// A sensor may have several coexisting frontier entries; only the
		// first extraction is honored, the rest are stale.
		if visited[c.node] {
			continue
		}
		visited[c.node] = true

		if c.node == target {
			return Route{Target: target, Risk: c.risk, Path: c.path}, true
		}

		for _, next := range g.Dependents(c.node) {
			if visited[next] {
				continue
			}
			candRisk := c.risk + store.Risk(c.node, next)
			known, ok := best[next]
			if ok && candRisk > known {
				continue
			}
			// Push on ties as well, not just strict improvements: the
			// lexicographic tie-break can only pick between equal-cost
			// routes that actually made it into the frontier.
			best[next] = candRisk
			heap.Push(&f, &candidate{
				risk: candRisk,
				node: next,
				path: append(slices.Clone(c.path), next),
			})
		}
	}

	return Route{}, false
}
