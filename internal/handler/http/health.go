// Package http provides HTTP handlers and middleware for the knowledge hub
// API: health probes, metrics collection, request logging and recovery.
package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"knowledge-hub/internal/handler/http/respond"
)

// Pinger is the subset of *sql.DB the health handler needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the JSON body returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	DB      bool   `json:"db"`
	Time    string `json:"time"`
	Version string `json:"version,omitempty"`
}

// HealthHandler reports liveness and store reachability. It pings the
// database with a short timeout and returns 200 with db:true on success,
// 500 with db:false when the store is unreachable.
type HealthHandler struct {
	DB      Pinger
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	dbOK := false
	if h.DB != nil {
		dbOK = h.DB.PingContext(ctx) == nil
	}

	status := "ok"
	code := http.StatusOK
	if !dbOK {
		status = "unhealthy"
		code = http.StatusInternalServerError
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:  status,
		DB:      dbOK,
		Time:    time.Now().UTC().Format(time.RFC3339),
		Version: h.Version,
	})
}

// ReadyHandler handles Kubernetes readiness probe requests. It returns
// 200 only when the database accepts connections.
type ReadyHandler struct {
	DB Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.DB.PingContext(ctx); err != nil {
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		log.Printf("ready: failed to write response: %v", err)
	}
}

// LiveHandler handles Kubernetes liveness probe requests and always returns
// 200 while the process can respond.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		log.Printf("alive: failed to write response: %v", err)
	}
}
