package websocket

import (
	"log/slog"
	"sync"

	"github.com/lorrc/helpdesk-backend/internal/core/domain"
)

// Hub maintains the set of active Clients and broadcasts ticket events to
// them. Every connected client is a board viewer; there is no per-client
// identity and no per-ticket subscription, the whole board shares one feed.
type Hub struct {
	// clients holds all active connections
	clients map[*Client]bool

	// Broadcast channel for events
	broadcast chan domain.Event

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	// mu protects the clients map
	mu sync.RWMutex

	// logger for the hub
	logger *slog.Logger
}

// NewHub creates a new WebSocket hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan domain.Event, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		logger:     logger.With("component", "websocket_hub"),
	}
}

// Broadcast sends an event to the hub's internal broadcast channel. It never
// blocks a request: if the channel is full the event is dropped and logged.
func (h *Hub) Broadcast(event domain.Event) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("broadcast channel full, dropping event",
			"event_type", event.Type,
			"ticket_id", event.TicketID,
		)
	}
}

// Run starts the hub's event loop. This MUST be run as a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)

		case client := <-h.Unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// ClientCount returns the number of connected board viewers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// registerClient adds a client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info("client registered",
		"remote_addr", client.RemoteAddr,
		"total_connections", len(h.clients),
	)
}

// unregisterClient removes a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	client.CloseSend()

	h.logger.Info("client unregistered",
		"remote_addr", client.RemoteAddr,
		"total_connections", len(h.clients),
	)
}

// broadcastEvent fans an event out to every connected client. Slow clients
// with a full send buffer are disconnected rather than blocking the loop.
func (h *Hub) broadcastEvent(event domain.Event) {
	h.mu.RLock()
	stale := make([]*Client, 0)
	for client := range h.clients {
		select {
		case client.Send <- event:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stale {
		h.logger.Warn("client send buffer full, disconnecting",
			"remote_addr", client.RemoteAddr,
		)
		h.unregisterClient(client)
	}
}
