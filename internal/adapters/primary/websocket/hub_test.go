package websocket

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lorrc/helpdesk-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegisteredClient(t *testing.T, hub *Hub, wantCount int) *Client {
	t.Helper()
	client := NewClient(hub, nil, "test-client", testLogger())
	hub.Register <- client

	require.Eventually(t, func() bool {
		return hub.ClientCount() == wantCount
	}, time.Second, 5*time.Millisecond)

	return client
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub(testLogger())
	go hub.Run()

	first := newRegisteredClient(t, hub, 1)
	second := newRegisteredClient(t, hub, 2)
	require.Equal(t, 2, hub.ClientCount())

	event := domain.Event{Type: domain.EventTicketCreated, TicketID: 1}
	hub.Broadcast(event)

	for _, client := range []*Client{first, second} {
		select {
		case got := <-client.Send:
			assert.Equal(t, domain.EventTicketCreated, got.Type)
			assert.Equal(t, int64(1), got.TicketID)
		case <-time.After(time.Second):
			t.Fatal("client did not receive the broadcast event")
		}
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := NewHub(testLogger())
	go hub.Run()

	client := newRegisteredClient(t, hub, 1)
	hub.Unregister <- client

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 5*time.Millisecond)

	select {
	case _, ok := <-client.Send:
		assert.False(t, ok, "send channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHub_BroadcastNeverBlocks(t *testing.T) {
	hub := NewHub(testLogger())
	// Hub loop not running: the internal channel fills up and further
	// events must be dropped without blocking the caller.
	for i := 0; i < 500; i++ {
		hub.Broadcast(domain.Event{Type: domain.EventTicketCreated, TicketID: int64(i)})
	}
}
