// Package app wires the application together: it configures logging, loads
// the grid through an injected config.Loader, builds the dependency graph
// and risk store, runs the planner, writes the plan to the output writer,
// and optionally publishes it and serves a health check endpoint.
package app
