package http

import (
	"net/http"

	"github.com/lorrc/helpdesk-backend/internal/core/store"
)

// StatsHandler serves the board header metrics.
type StatsHandler struct {
	store *store.TicketStore
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(ticketStore *store.TicketStore) *StatsHandler {
	return &StatsHandler{store: ticketStore}
}

// StatsDTO defines the JSON response for ticket counts.
type StatsDTO struct {
	Total    int `json:"total"`
	Open     int `json:"open"`
	Resolved int `json:"resolved"`
}

// HandleStats handles GET /stats
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Stats()
	WriteSuccess(w, StatsDTO{
		Total:    stats.Total,
		Open:     stats.Open,
		Resolved: stats.Resolved,
	})
}
