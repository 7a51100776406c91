// Package server holds the shared runtime state of the MCP server:
// per-account client caches, health probes, and the dedicated metrics
// endpoint.
//
// ServerContext is the hub handed to every tool handler. It creates
// Google service clients lazily, one per account, and caches them for
// the lifetime of the process. Shutdown cancels the base context and
// releases the caches.
//
// When the metrics server is enabled it runs on its own port, serving
// /metrics for Prometheus together with the /healthz and /readyz
// probes.
package server
