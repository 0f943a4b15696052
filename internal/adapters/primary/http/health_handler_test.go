package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorrc/helpdesk-backend/internal/core/domain"
	"github.com/lorrc/helpdesk-backend/internal/core/store"
)

func TestHealthHandler(t *testing.T) {
	ticketStore := store.NewStore()
	_, err := ticketStore.Create(domain.TicketParams{Title: "Laptop issue"})
	require.NoError(t, err)

	handler := NewHealthHandler(ticketStore, "test")

	t.Run("liveness", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandleLiveness(rec, httptest.NewRequest(stdhttp.MethodGet, "/health/live", nil))

		require.Equal(t, stdhttp.StatusOK, rec.Code)
		body := decodeBody[HealthResponse](t, rec)
		assert.Equal(t, "healthy", body.Status)
	})

	t.Run("readiness reports store counters", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandleReadiness(rec, httptest.NewRequest(stdhttp.MethodGet, "/health/ready", nil))

		require.Equal(t, stdhttp.StatusOK, rec.Code)
		body := decodeBody[HealthResponse](t, rec)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "test", body.Version)
		require.Contains(t, body.Checks, "store")
		assert.Contains(t, body.Checks["store"].Message, "1 tickets")
	})
}
