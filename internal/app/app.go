package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/vk/riskgridgo/internal/config"
	"github.com/vk/riskgridgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
	model  *config.Model
	phase  atomic.Value
}

// setPhase records the current run phase for the health endpoint.
func (a *App) setPhase(phase string) {
	a.phase.Store(phase)
}

// runPhase returns the current run phase.
func (a *App) runPhase() string {
	if p, ok := a.phase.Load().(string); ok {
		return p
	}
	return statusIdle
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the grid
// configuration already loaded through the injected loader.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the grid into the format-agnostic model first. A failure to load
	// config is a fatal startup error.
	model, err := loader.Load(ctx, appConfig.GridPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	a := &App{
		outW:   outW,
		logW:   logW,
		logger: logger,
		model:  model,
	}
	a.setPhase(statusIdle)
	return a
}

// Model returns the loaded grid model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
