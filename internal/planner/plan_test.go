package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/riskgridgo/internal/risk"
)

// diamondDeps is a two-root, three-layer grid used by several tests:
// 0 and 1 are roots, 2 and 3 sit behind both, 4 and 5 behind 2 and 3,
// and 6 behind 4 and 5.
var diamondDeps = map[int][]int{
	0: {}, 1: {},
	2: {0, 1}, 3: {0, 1},
	4: {2, 3}, 5: {2, 3},
	6: {4, 5},
}

func diamondStore() *risk.Store {
	store := risk.NewStore()
	store.SetRisk(0, 2, 6)
	store.SetRisk(1, 2, 1)
	store.SetRisk(0, 3, 4)
	store.SetRisk(1, 3, 4)
	store.SetRisk(2, 4, 3)
	store.SetRisk(3, 4, 5)
	store.SetRisk(2, 5, 6)
	store.SetRisk(3, 5, 6)
	store.SetRisk(4, 6, 2)
	store.SetRisk(5, 6, 9)
	return store
}

func TestPlanGreedyOrdering(t *testing.T) {
	g := buildGraph(t, diamondDeps)

	routes := Plan(context.Background(), g, diamondStore(), []int{4, 5, 6})
	require.Len(t, routes, 3)

	// Targets resolve strictly in nondecreasing risk order, not input
	// order: 4 first, then 6 riding the zeroed links, then 5.
	assert.Equal(t, Route{Target: 4, Risk: 4, Path: []int{1, 2, 4}}, routes[0])
	assert.Equal(t, Route{Target: 6, Risk: 2, Path: []int{1, 2, 4, 6}}, routes[1])
	assert.Equal(t, Route{Target: 5, Risk: 6, Path: []int{1, 2, 5}}, routes[2])
}

func TestPlanZeroesCommittedLinks(t *testing.T) {
	g := buildGraph(t, map[int][]int{0: {}, 1: {0}, 2: {1}, 3: {1}})
	store := risk.NewStore()
	store.SetRisk(0, 1, 10)
	store.SetRisk(1, 2, 5)
	store.SetRisk(1, 3, 5)

	routes := Plan(context.Background(), g, store, []int{2, 3})
	require.Len(t, routes, 2)

	// Both targets tie at 15 initially, so 2 wins by ID. Zeroing 0->1 and
	// 1->2 makes 3's route cost only its own final hop.
	assert.Equal(t, Route{Target: 2, Risk: 15, Path: []int{0, 1, 2}}, routes[0])
	assert.Equal(t, Route{Target: 3, Risk: 5, Path: []int{0, 1, 3}}, routes[1])

	// Every link along a committed route is zeroed in the store.
	assert.Equal(t, 0.0, store.Risk(0, 1))
	assert.Equal(t, 0.0, store.Risk(1, 2))
	assert.Equal(t, 0.0, store.Risk(1, 3))
}

func TestPlanSkipsUnreachableTargets(t *testing.T) {
	g := buildGraph(t, map[int][]int{0: {}, 1: {0}})
	store := risk.NewStore()
	store.SetRisk(0, 1, 2)

	routes := Plan(context.Background(), g, store, []int{1, 99})
	require.Len(t, routes, 1)
	assert.Equal(t, Route{Target: 1, Risk: 2, Path: []int{0, 1}}, routes[0])
}

func TestPlanWithNoReachableTargets(t *testing.T) {
	g := buildGraph(t, map[int][]int{0: {}})
	store := risk.NewStore()

	routes := Plan(context.Background(), g, store, []int{7, 8})
	assert.Empty(t, routes)
}

func TestPlanDeduplicatesTargets(t *testing.T) {
	g := buildGraph(t, map[int][]int{0: {}, 1: {0}})
	store := risk.NewStore()
	store.SetRisk(0, 1, 1)

	routes := Plan(context.Background(), g, store, []int{1, 1, 1})
	assert.Len(t, routes, 1)
}

func TestPlanIsDeterministic(t *testing.T) {
	g := buildGraph(t, diamondDeps)

	first := Plan(context.Background(), g, diamondStore(), []int{4, 5, 6})
	second := Plan(context.Background(), g, diamondStore(), []int{4, 5, 6})
	assert.Equal(t, first, second)
}
