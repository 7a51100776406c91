package instrumentation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *metric.ManualReader) {
	t.Helper()
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewMetrics(provider.Meter("test"), false)
	require.NoError(t, err)
	return m, reader
}

func collectNames(t *testing.T, reader *metric.ManualReader) map[string]bool {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, met := range sm.Metrics {
			names[met.Name] = true
		}
	}
	return names
}

func TestRecordToolInvocation(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordToolInvocation(context.Background(), "drive_search_files", StatusSuccess, 120*time.Millisecond)

	names := collectNames(t, reader)
	assert.True(t, names["mcp_tool_invocations_total"])
	assert.True(t, names["mcp_tool_duration_seconds"])
}

func TestRecordGoogleAPIOperation(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordGoogleAPIOperation(context.Background(), ServiceDrive, "list", StatusSuccess, 80*time.Millisecond)

	names := collectNames(t, reader)
	assert.True(t, names["google_api_operations_total"])
	assert.True(t, names["google_api_operation_duration_seconds"])
}

func TestRecordContentSearch(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordContentSearch(context.Background(), StatusSuccess, 2, 7, 3*time.Second)

	names := collectNames(t, reader)
	assert.True(t, names["content_search_sweeps_total"])
	assert.True(t, names["content_search_files_skipped_total"])
	assert.True(t, names["content_search_matches_total"])
	assert.True(t, names["content_search_sweep_duration_seconds"])
}

func TestRecordContentSearchZeroCountsOmitted(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordContentSearch(context.Background(), StatusSuccess, 0, 0, time.Second)

	names := collectNames(t, reader)
	assert.True(t, names["content_search_sweeps_total"])
	assert.False(t, names["content_search_files_skipped_total"])
	assert.False(t, names["content_search_matches_total"])
}

func TestZeroValueMetricsIsNoop(t *testing.T) {
	var m Metrics

	// Must not panic with no instruments initialized.
	m.RecordToolInvocation(context.Background(), "tool", StatusSuccess, time.Second)
	m.RecordGoogleAPIOperation(context.Background(), ServiceGmail, "get", StatusError, time.Second)
	m.RecordHTTPRequest(context.Background(), "GET", "/healthz", 200, time.Millisecond)
	m.RecordContentSearch(context.Background(), StatusSuccess, 1, 1, time.Second)
	m.IncrementActiveSessions(context.Background())
	m.DecrementActiveSessions(context.Background())
}

func TestProviderDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	p, err := NewProvider(context.Background(), cfg)
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Metrics())
	assert.False(t, p.HasPrometheusExporter())
	require.NoError(t, p.Shutdown(context.Background()))
}
