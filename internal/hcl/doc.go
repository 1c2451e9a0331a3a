// Package hcl implements the config.Loader interface for grids declared in
// HCL. Grid files contribute `sensor` and `risk` blocks, a top-level
// `targets` attribute, and at most one `publish` block; blocks from multiple
// files are merged into a single model before translation.
package hcl
