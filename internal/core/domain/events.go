package domain

// EventType defines the type of real-time event.
type EventType string

const (
	EventTicketCreated  EventType = "TICKET_CREATED"
	EventTicketResolved EventType = "TICKET_RESOLVED"
)

// Event is the payload sent over WebSocket to connected board viewers.
type Event struct {
	Type     EventType   `json:"type"`
	TicketID int64       `json:"ticketId"`
	Payload  interface{} `json:"payload"`
}
