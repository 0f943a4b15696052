package websocket

import (
	"sync"
	"testing"
	"time"

	"github.com/lorrc/helpdesk-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PingMessageGetsPong(t *testing.T) {
	hub := NewHub(testLogger())
	client := NewClient(hub, nil, "test-client", testLogger())

	client.handleIncomingMessage([]byte(`{"type":"PING"}`))

	select {
	case got := <-client.Send:
		assert.Equal(t, domain.EventType("PONG"), got.Type)
	case <-time.After(time.Second):
		t.Fatal("no pong was queued")
	}
}

func TestClient_PongSkippedAfterClose(t *testing.T) {
	hub := NewHub(testLogger())
	client := NewClient(hub, nil, "test-client", testLogger())

	// The hub drops slow clients while their read loop may still be
	// handling an incoming keep-alive. That must not panic.
	client.CloseSend()
	client.handleIncomingMessage([]byte(`{"type":"PING"}`))

	_, ok := <-client.Send
	require.False(t, ok, "send channel should stay closed")
}

func TestClient_CloseSendRacesWithPong(t *testing.T) {
	hub := NewHub(testLogger())
	client := NewClient(hub, nil, "test-client", testLogger())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			client.sendPong()
		}
	}()
	go func() {
		defer wg.Done()
		client.CloseSend()
	}()
	wg.Wait()
}
