// Package dag builds the directed acyclic dependency graph of a sensor grid.
// It converts the flat list of sensor declarations into a forward adjacency
// structure (dependency -> dependents), derives the set of roots, and
// validates the declarations: every referenced dependency must exist, no
// sensor may be declared twice or depend on itself, and the graph must be
// free of cycles.
package dag
