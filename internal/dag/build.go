package dag

import (
	"context"
	"fmt"

	"github.com/vk/riskgridgo/internal/config"
	"github.com/vk/riskgridgo/internal/ctxlog"
)

// Build constructs a complete, validated dependency graph from a config model.
func Build(ctx context.Context, model *config.Model) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.")
	graph := New()

	// First pass: create a node for every declared sensor.
	for _, s := range model.Sensors {
		if err := graph.AddSensor(s.ID); err != nil {
			return nil, fmt.Errorf("invalid sensor declaration: %w", err)
		}
	}
	logger.Debug("Build: sensor creation complete.", "sensor_count", graph.Len())

	// Second pass: link dependencies. Any dependency on a sensor that was
	// never declared fails the whole run before a search begins.
	for _, s := range model.Sensors {
		for _, depID := range s.DependsOn {
			if err := graph.AddDependency(depID, s.ID); err != nil {
				return nil, fmt.Errorf("invalid dependency declaration: %w", err)
			}
		}
	}
	logger.Debug("Build: dependency linking complete.")

	if err := graph.detectCycles(); err != nil {
		return nil, fmt.Errorf("error validating dependency graph: %w", err)
	}
	logger.Debug("Build: cycle detection passed.")

	logger.Debug("Build: graph construction successful.", "root_count", len(graph.Roots()))
	return graph, nil
}
