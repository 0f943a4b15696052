package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lorrc/helpdesk-backend/internal/core/store"
)

// HealthHandler handles health check requests. There is no database or other
// external dependency to probe; readiness reports the in-memory store's
// counters so operators can see the session's state at a glance.
type HealthHandler struct {
	store     *store.TicketStore
	startTime time.Time
	version   string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(ticketStore *store.TicketStore, version string) *HealthHandler {
	return &HealthHandler{
		store:     ticketStore,
		startTime: time.Now(),
		version:   version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Version   string           `json:"version,omitempty"`
	Uptime    string           `json:"uptime,omitempty"`
	Checks    map[string]Check `json:"checks,omitempty"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleLiveness handles liveness probe requests (is the service running?)
func (h *HealthHandler) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// HandleReadiness handles readiness probe requests (can the service accept traffic?)
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Stats()

	checks := map[string]Check{
		"store": {
			Status: "healthy",
			Message: fmt.Sprintf("tracking %d tickets (%d open, %d resolved)",
				stats.Total, stats.Open, stats.Resolved),
		},
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Checks:    checks,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// HandleHealth is the combined health endpoint
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.HandleReadiness(w, r)
}
