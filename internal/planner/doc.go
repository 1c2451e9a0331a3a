// Package planner computes the set of lowest-risk routes through a sensor
// grid. It combines two pieces:
//
// The search engine is a multi-source Dijkstra seeded from every root of the
// grid at once. The frontier is a min-heap ordered first by accumulated risk
// and, between equal risks, by lexicographic comparison of the full node
// sequence, so that among equal-cost routes the one visiting smaller sensor
// IDs earlier always wins. The engine uses lazy decrease-key: stale heap
// entries are skipped when popped, and candidates that merely tie the
// best-known risk of a node are still pushed so that equal-cost alternatives
// stay available for the tie-break.
//
// The selection loop repeatedly asks the engine for the best route to every
// remaining target, commits the globally cheapest one (smallest target ID on
// a tie), zeroes the risk of every link along the committed route, and
// repeats. Zeroed links are free for all later searches in the run, so
// routes converge onto links that were already traversed. Targets that no
// search can reach are left out of the plan; that is an expected outcome,
// not an error.
package planner
