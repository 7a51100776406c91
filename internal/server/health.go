package server

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthChecker provides liveness and readiness probes for the server.
type HealthChecker struct {
	ready         atomic.Bool
	serverContext *ServerContext
	startTime     time.Time
}

// NewHealthChecker creates a health checker bound to the given server
// context. The checker starts in the not-ready state; call SetReady
// once the server is accepting requests.
func NewHealthChecker(sc *ServerContext) *HealthChecker {
	return &HealthChecker{
		serverContext: sc,
		startTime:     time.Now(),
	}
}

// SetReady marks the server as ready to serve traffic.
func (h *HealthChecker) SetReady(ready bool) {
	h.ready.Store(ready)
}

// LivenessHandler reports whether the process is alive. It always
// returns 200 while the process can serve HTTP.
func (h *HealthChecker) LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// ReadinessHandler reports whether the server is ready for traffic.
// It returns 503 before startup completes and during shutdown.
func (h *HealthChecker) ReadinessHandler(w http.ResponseWriter, _ *http.Request) {
	if !h.ready.Load() || (h.serverContext != nil && h.serverContext.IsShuttingDown()) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// DetailedHealthHandler returns a JSON document with uptime and state,
// intended for human inspection rather than probes.
func (h *HealthChecker) DetailedHealthHandler(w http.ResponseWriter, _ *http.Request) {
	status := "ok"
	code := http.StatusOK
	if !h.ready.Load() || (h.serverContext != nil && h.serverContext.IsShuttingDown()) {
		status = "not ready"
		code = http.StatusServiceUnavailable
	}

	body := map[string]any{
		"status": status,
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
		"ready":  h.ready.Load(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// RegisterHealthEndpoints registers the health handlers on the mux:
// /healthz (liveness), /readyz (readiness) and /healthz/detailed.
func (h *HealthChecker) RegisterHealthEndpoints(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", h.LivenessHandler)
	mux.HandleFunc("/readyz", h.ReadinessHandler)
	mux.HandleFunc("/healthz/detailed", h.DetailedHealthHandler)
}
