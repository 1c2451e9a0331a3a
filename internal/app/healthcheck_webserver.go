package app

import (
	"fmt"
	"net"
	"net/http"
)

// Run phases reported by the health endpoint.
const (
	statusIdle     = "idle"
	statusPlanning = "planning"
	statusDone     = "done"
)

// healthHandler answers 200 with the planner's current run phase, so an
// orchestrator polling /health can tell a hung run from a finished one.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	phase := a.runPhase()
	a.logger.Debug("Health endpoint hit.", "remote_addr", r.RemoteAddr, "phase", phase)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK %s\n", phase)
}

// startHealthcheckServer binds the health endpoint and serves it in the
// background for the rest of the process lifetime. It returns the bound
// address, so a caller passing port 0 learns the ephemeral port.
func (a *App) startHealthcheckServer(port int) (string, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return "", fmt.Errorf("cannot bind healthcheck port %d: %w", port, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)

	go func() {
		a.logger.Info("🩺 Healthcheck listening", "address", fmt.Sprintf("http://%s/health", listener.Addr()))
		if err := http.Serve(listener, mux); err != nil {
			a.logger.Error("Healthcheck server stopped", "error", err)
		}
	}()

	return listener.Addr().String(), nil
}
