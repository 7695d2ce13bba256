package http_test

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	handler "knowledge-hub/internal/handler/http"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) PingContext(context.Context) error { return s.err }

func TestHealthHandler_Healthy(t *testing.T) {
	h := &handler.HealthHandler{DB: &stubPinger{}, Version: "1.2.3"}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if rec.Code != nethttp.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	var body handler.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("status field = %q, want ok", body.Status)
	}
	if !body.DB {
		t.Error("db field = false, want true")
	}
	if body.Time == "" {
		t.Error("time field missing")
	}
	if body.Version != "1.2.3" {
		t.Errorf("version field = %q, want 1.2.3", body.Version)
	}
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	h := &handler.HealthHandler{DB: &stubPinger{err: errors.New("connection refused")}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if rec.Code != nethttp.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	var body handler.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.DB {
		t.Error("db field = true, want false")
	}
	if body.Status != "unhealthy" {
		t.Errorf("status field = %q, want unhealthy", body.Status)
	}
}

func TestHealthHandler_NoDatabase(t *testing.T) {
	h := &handler.HealthHandler{}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if rec.Code != nethttp.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestReadyHandler(t *testing.T) {
	tests := []struct {
		name     string
		db       handler.Pinger
		wantCode int
	}{
		{name: "ready", db: &stubPinger{}, wantCode: nethttp.StatusOK},
		{name: "db down", db: &stubPinger{err: errors.New("refused")}, wantCode: nethttp.StatusServiceUnavailable},
		{name: "not configured", db: nil, wantCode: nethttp.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &handler.ReadyHandler{DB: tt.db}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/ready", nil))

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestLiveHandler(t *testing.T) {
	h := &handler.LiveHandler{}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/live", nil))

	if rec.Code != nethttp.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "alive" {
		t.Errorf("body = %q, want alive", rec.Body.String())
	}
}
