// Package instrumentation wires OpenTelemetry metrics and tracing for
// the server: exporter selection (prometheus, OTLP, stdout), resource
// attributes, and a Metrics recorder covering tool invocations, Google
// API operations, HTTP requests, sessions and content-search sweeps.
//
// All recorders are nil-safe: with instrumentation disabled every
// Record* call is a no-op, so callers never need to branch.
package instrumentation
