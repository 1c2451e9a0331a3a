package app

import (
	"context"
	"fmt"

	"github.com/vk/riskgridgo/internal/ctxlog"
	"github.com/vk/riskgridgo/internal/dag"
	"github.com/vk/riskgridgo/internal/planner"
	"github.com/vk/riskgridgo/internal/publish"
	"github.com/vk/riskgridgo/internal/report"
	"github.com/vk/riskgridgo/internal/risk"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.setPhase(statusPlanning)
	defer a.setPhase(statusDone)

	if appConfig.HealthcheckPort > 0 {
		if _, err := a.startHealthcheckServer(appConfig.HealthcheckPort); err != nil {
			return err
		}
	}

	a.logger.Debug("Building dependency graph from config model...")
	graph, err := dag.Build(ctx, a.model)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	a.logger.Debug("Dependency graph built.", "sensor_count", graph.Len())

	store, err := risk.Build(ctx, a.model)
	if err != nil {
		return fmt.Errorf("failed to build risk store: %w", err)
	}

	if len(a.model.Targets) == 0 {
		a.logger.Warn("No targets declared in grid, nothing to plan.")
		return nil
	}

	a.logger.Info("🚀 Planning routes...",
		"sensors", graph.Len(),
		"roots", len(graph.Roots()),
		"targets", len(a.model.Targets),
	)
	routes := planner.Plan(ctx, graph, store, a.model.Targets)
	a.logger.Info("🏁 Planning finished.", "routes", len(routes))

	if err := report.Write(a.outW, routes, a.model.Targets); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}

	if a.model.Publish != nil {
		if err := publish.Plan(ctx, a.model.Publish, routes); err != nil {
			return fmt.Errorf("plan computed but not published: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
