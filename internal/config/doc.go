// Package config defines the format-agnostic configuration model for a
// sensor grid and the Loader interface that format-specific implementations
// (currently HCL) satisfy. Keeping the model free of parser types lets the
// planner and its tests work without knowing where the grid came from.
package config
