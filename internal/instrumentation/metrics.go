package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys
const (
	attrMethod    = "method"
	attrPath      = "path"
	attrStatus    = "status"
	attrOperation = "operation"
	attrService   = "service"
	attrTool      = "tool"
	attrAccount   = "account"
)

// Metrics provides methods for recording observability metrics.
// The zero value is a no-op recorder.
type Metrics struct {
	// HTTP metrics
	httpRequestsTotal   metric.Int64Counter
	httpRequestDuration metric.Float64Histogram
	activeSessions      metric.Int64UpDownCounter

	// Google API metrics
	googleAPIOperationsTotal   metric.Int64Counter
	googleAPIOperationDuration metric.Float64Histogram

	// MCP Tool metrics
	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram

	// Content search metrics
	searchSweepsTotal       metric.Int64Counter
	searchFilesSkippedTotal metric.Int64Counter
	searchMatchesTotal      metric.Int64Counter
	searchSweepDuration     metric.Float64Histogram

	// detailedLabels controls whether high-cardinality labels are included
	detailedLabels bool
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter, detailedLabels bool) (*Metrics, error) {
	m := &Metrics{
		detailedLabels: detailedLabels,
	}

	var err error

	// HTTP Metrics
	m.httpRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_requests_total counter: %w", err)
	}

	m.httpRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_request_duration_seconds histogram: %w", err)
	}

	m.activeSessions, err = meter.Int64UpDownCounter(
		"active_sessions",
		metric.WithDescription("Number of active MCP sessions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create active_sessions gauge: %w", err)
	}

	// Google API Metrics
	m.googleAPIOperationsTotal, err = meter.Int64Counter(
		"google_api_operations_total",
		metric.WithDescription("Total number of Google API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create google_api_operations_total counter: %w", err)
	}

	m.googleAPIOperationDuration, err = meter.Float64Histogram(
		"google_api_operation_duration_seconds",
		metric.WithDescription("Google API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create google_api_operation_duration_seconds histogram: %w", err)
	}

	// MCP Tool Metrics
	m.toolInvocationsTotal, err = meter.Int64Counter(
		"mcp_tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"mcp_tool_duration_seconds",
		metric.WithDescription("MCP tool execution duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_duration_seconds histogram: %w", err)
	}

	// Content Search Metrics
	m.searchSweepsTotal, err = meter.Int64Counter(
		"content_search_sweeps_total",
		metric.WithDescription("Total number of Drive content search sweeps"),
		metric.WithUnit("{sweep}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create content_search_sweeps_total counter: %w", err)
	}

	m.searchFilesSkippedTotal, err = meter.Int64Counter(
		"content_search_files_skipped_total",
		metric.WithDescription("Files skipped during content search because fetch or decode failed"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create content_search_files_skipped_total counter: %w", err)
	}

	m.searchMatchesTotal, err = meter.Int64Counter(
		"content_search_matches_total",
		metric.WithDescription("Total matches found by content search sweeps"),
		metric.WithUnit("{match}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create content_search_matches_total counter: %w", err)
	}

	m.searchSweepDuration, err = meter.Float64Histogram(
		"content_search_sweep_duration_seconds",
		metric.WithDescription("Content search sweep duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0, 120.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create content_search_sweep_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordHTTPRequest records an HTTP request with method, path, status code, and duration.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	if m.httpRequestsTotal == nil || m.httpRequestDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrMethod, method),
		attribute.String(attrPath, path),
		attribute.String(attrStatus, strconv.Itoa(statusCode)),
	}

	m.httpRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.httpRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordGoogleAPIOperation records a Google API operation.
//
// Parameters:
//   - service: Google service name (gmail, calendar, drive, tasks)
//   - operation: Operation type (list, get, search, export, etc.)
//   - status: Result status ("success" or "error")
//   - duration: Time taken for the operation
func (m *Metrics) RecordGoogleAPIOperation(ctx context.Context, service, operation, status string, duration time.Duration) {
	if m.googleAPIOperationsTotal == nil || m.googleAPIOperationDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrService, service),
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.googleAPIOperationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.googleAPIOperationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordToolInvocation records an MCP tool invocation.
func (m *Metrics) RecordToolInvocation(ctx context.Context, toolName, status string, duration time.Duration) {
	m.RecordToolInvocationWithAccount(ctx, toolName, status, "", duration)
}

// RecordToolInvocationWithAccount records an MCP tool invocation; the
// account label is attached only when detailed labels are enabled.
func (m *Metrics) RecordToolInvocationWithAccount(ctx context.Context, toolName, status, account string, duration time.Duration) {
	if m.toolInvocationsTotal == nil || m.toolDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, toolName),
		attribute.String(attrStatus, status),
	}
	if m.detailedLabels && account != "" {
		attrs = append(attrs, attribute.String(attrAccount, account))
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordContentSearch records the outcome of one content search sweep.
func (m *Metrics) RecordContentSearch(ctx context.Context, status string, skippedFiles, matches int, duration time.Duration) {
	if m.searchSweepsTotal == nil {
		return // Instrumentation not initialized
	}

	statusAttr := metric.WithAttributes(attribute.String(attrStatus, status))
	m.searchSweepsTotal.Add(ctx, 1, statusAttr)
	m.searchSweepDuration.Record(ctx, duration.Seconds(), statusAttr)

	if skippedFiles > 0 {
		m.searchFilesSkippedTotal.Add(ctx, int64(skippedFiles))
	}
	if matches > 0 {
		m.searchMatchesTotal.Add(ctx, int64(matches))
	}
}

// IncrementActiveSessions increments the active sessions counter.
func (m *Metrics) IncrementActiveSessions(ctx context.Context) {
	if m.activeSessions == nil {
		return // Instrumentation not initialized
	}
	m.activeSessions.Add(ctx, 1)
}

// DecrementActiveSessions decrements the active sessions counter.
func (m *Metrics) DecrementActiveSessions(ctx context.Context) {
	if m.activeSessions == nil {
		return // Instrumentation not initialized
	}
	m.activeSessions.Add(ctx, -1)
}
