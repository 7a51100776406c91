package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthChecker_Liveness(t *testing.T) {
	h := NewHealthChecker(nil)

	rec := httptest.NewRecorder()
	h.LivenessHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("LivenessHandler status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHealthChecker_Readiness(t *testing.T) {
	sc := NewServerContext(context.Background())
	h := NewHealthChecker(sc)

	rec := httptest.NewRecorder()
	h.ReadinessHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("before SetReady: status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	h.SetReady(true)
	rec = httptest.NewRecorder()
	h.ReadinessHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("after SetReady: status = %d, want %d", rec.Code, http.StatusOK)
	}

	sc.Shutdown()
	rec = httptest.NewRecorder()
	h.ReadinessHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("after Shutdown: status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHealthChecker_Detailed(t *testing.T) {
	sc := NewServerContext(context.Background())
	h := NewHealthChecker(sc)
	h.SetReady(true)

	rec := httptest.NewRecorder()
	h.DetailedHealthHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz/detailed", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("DetailedHealthHandler status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %v, want %q", body["status"], "ok")
	}
	if body["ready"] != true {
		t.Errorf("ready = %v, want true", body["ready"])
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc := NewServerContext(context.Background())

	if sc.IsShuttingDown() {
		t.Error("new context reports shutting down")
	}

	sc.Shutdown()

	if !sc.IsShuttingDown() {
		t.Error("context does not report shutting down after Shutdown()")
	}
	select {
	case <-sc.Context().Done():
	default:
		t.Error("base context not cancelled after Shutdown()")
	}

	// A second Shutdown is a no-op.
	sc.Shutdown()
}
