// Package risk provides the mutable store of traversal risks for the
// directed links of a sensor grid.
package risk

import "sync"

// link is the composite key for a directed edge between two sensors.
type link struct {
	from int
	to   int
}

// Store maps directed sensor links to their risk values. Links that were
// never assigned a risk cost nothing to traverse. The planner zeroes links
// in the store as routes are recorded, which discounts them for every later
// search in the same run.
type Store struct {
	// mu protects risks. The planner itself is strictly sequential, but the
	// store must stay safe if a host serializes searches around it.
	mu    sync.RWMutex
	risks map[link]float64
}

// NewStore creates an empty risk store.
func NewStore() *Store {
	return &Store{
		risks: make(map[link]float64),
	}
}

// Risk returns the stored risk for the directed link from -> to, or 0 if the
// link was never assigned one.
func (s *Store) Risk(from, to int) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.risks[link{from: from, to: to}]
}

// SetRisk inserts or overwrites the risk for the directed link from -> to.
func (s *Store) SetRisk(from, to int, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.risks[link{from: from, to: to}] = value
}

// Zero marks the directed link from -> to as free to traverse.
func (s *Store) Zero(from, to int) {
	s.SetRisk(from, to, 0)
}
