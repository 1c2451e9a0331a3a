// Package publish pushes a finished plan to a socket.io monitoring endpoint.
package publish

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/riskgridgo/internal/config"
	"github.com/vk/riskgridgo/internal/ctxlog"
	"github.com/vk/riskgridgo/internal/planner"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Plan connects to the configured endpoint, emits the plan as a single
// event, and disconnects. It fails if the connection cannot be established
// or the emit does not happen within the configured timeout.
func Plan(ctx context.Context, cfg *config.Publish, routes []planner.Route) error {
	logger := ctxlog.FromContext(ctx).With("url", cfg.URL, "event", cfg.Event)
	logger.Debug("Publisher started")
	defer logger.Debug("Publisher finished")

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		logger.Warn("Failed to parse publish timeout, using default 10s", "timeout", cfg.Timeout, "error", err)
		timeout = 10 * time.Second
	}

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to parse publish URL: %w", err)
	}

	done := make(chan error, 1)
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)

	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting publisher client")
		io.Disconnect()
	}()

	payload := map[string]any{
		"routes": routes,
		"count":  len(routes),
	}

	io.On(types.EventName("connect"), func(...any) {
		logger.Info("Connected to monitoring endpoint", "namespace", cfg.Namespace, "sid", io.Id())
		io.Emit(cfg.Event, payload)
		done <- nil
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if e, ok := errs[0].(error); ok {
			done <- e
			return
		}
		done <- fmt.Errorf("connect error: %v", errs[0])
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		return fmt.Errorf("timed out publishing plan to %s after %s", cfg.URL, timeout)
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to publish plan: %w", err)
		}
	}

	logger.Info("Plan published", "routes", len(routes))
	return nil
}
