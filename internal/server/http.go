package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/instrumentation"
)

// HTTPServer serves the MCP streamable-HTTP transport on /mcp together
// with the health probe endpoints.
type HTTPServer struct {
	mcpServer  *mcpserver.MCPServer
	httpServer *http.Server
	health     *HealthChecker
	metrics    *instrumentation.Metrics
}

// NewHTTPServer creates an HTTP transport server for the given MCP server.
func NewHTTPServer(mcpSrv *mcpserver.MCPServer) *HTTPServer {
	return &HTTPServer{mcpServer: mcpSrv}
}

// SetHealthChecker attaches health probe handlers served alongside /mcp.
func (s *HTTPServer) SetHealthChecker(h *HealthChecker) {
	s.health = h
}

// SetMetrics enables per-request HTTP metrics.
func (s *HTTPServer) SetMetrics(m *instrumentation.Metrics) {
	s.metrics = m
}

// Start starts the HTTP server in a blocking manner.
func (s *HTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	streamable := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithEndpointPath("/mcp"),
	)
	mux.Handle("/mcp", s.instrument("/mcp", streamable))

	if s.health != nil {
		s.health.RegisterHealthEndpoints(mux)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("starting streamable HTTP server", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// instrument wraps a handler with request count and duration metrics.
func (s *HTTPServer) instrument(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.metrics.RecordHTTPRequest(r.Context(), r.Method, path, rec.status, time.Since(start))
	})
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
