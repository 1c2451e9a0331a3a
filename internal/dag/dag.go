package dag

import (
	"fmt"
	"sort"
	"sync"
)

// Graph is the dependency graph of a sensor grid. Edges point forward, from
// a dependency to the sensors that declared it, so walking the graph follows
// the direction a route through the grid would take.
type Graph struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all sensors in the graph, keyed by their unique ID.
	nodes map[int]*node
}

// node represents a single sensor in the graph. It is un-exported to enforce
// interaction with the graph via the public API (using integer IDs), not by
// direct struct manipulation.
type node struct {
	// id is the unique identifier for the sensor.
	id int
	// deps holds the set of sensors this one depends on (predecessors).
	deps map[int]*node
	// dependents holds the set of sensors that depend on this one (successors).
	dependents map[int]*node
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[int]*node),
	}
}

// AddSensor adds a new sensor with the given ID to the graph. Declaring the
// same sensor twice is a configuration error.
func (g *Graph) AddSensor(id int) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("sensor %d declared more than once", id)
	}

	g.nodes[id] = &node{
		id:         id,
		deps:       make(map[int]*node),
		dependents: make(map[int]*node),
	}
	return nil
}

// AddDependency records that the `toID` sensor depends on the `fromID`
// sensor, creating a directed edge fromID -> toID. An error is returned if
// either sensor does not exist or if the edge would be a self-reference.
func (g *Graph) AddDependency(fromID, toID int) error {
	if fromID == toID {
		return fmt.Errorf("sensor %d cannot depend on itself", fromID)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("sensor %d depends on unknown sensor %d", toID, fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("unknown sensor %d", toID)
	}

	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode

	return nil
}

// HasSensor reports whether a sensor with the given ID exists in the graph.
func (g *Graph) HasSensor(id int) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of sensors in the graph.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return len(g.nodes)
}

// Dependents returns the IDs of the sensors that depend on the given sensor,
// sorted ascending. It returns nil for an unknown sensor.
func (g *Graph) Dependents(id int) []int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil
	}

	dependents := make([]int, 0, len(n.dependents))
	for depID := range n.dependents {
		dependents = append(dependents, depID)
	}
	sort.Ints(dependents)
	return dependents
}

// Roots returns the IDs of all sensors with no dependencies, sorted
// ascending. Roots are the only valid starting points for a route.
func (g *Graph) Roots() []int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var roots []int
	for id, n := range g.nodes {
		if len(n.deps) == 0 {
			roots = append(roots, id)
		}
	}
	sort.Ints(roots)
	return roots
}

// detectCycles checks the graph for circular dependencies using classic
// depth-first search with three sets of nodes: permanent (fully visited and
// known safe), temporary (currently on the recursion stack), and unvisited.
func (g *Graph) detectCycles() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	permanent := make(map[int]bool)
	temporary := make(map[int]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.id] {
			return nil
		}
		if temporary[n.id] {
			// We've hit a node that's already on our recursion stack.
			return fmt.Errorf("cycle detected involving sensor %d", n.id)
		}

		temporary[n.id] = true

		for _, dependent := range n.dependents {
			if err := visit(dependent); err != nil {
				return err
			}
		}

		delete(temporary, n.id)
		permanent[n.id] = true

		return nil
	}

	for _, n := range g.nodes {
		if !permanent[n.id] {
			if err := visit(n); err != nil {
				return err
			}
		}
	}

	return nil
}
