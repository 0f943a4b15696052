package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lorrc/helpdesk-backend/internal/adapters/primary/validation"
	wsAdapter "github.com/lorrc/helpdesk-backend/internal/adapters/primary/websocket"
	"github.com/lorrc/helpdesk-backend/internal/core/domain"
	"github.com/lorrc/helpdesk-backend/internal/core/store"
)

// TicketHandler handles HTTP requests for tickets
type TicketHandler struct {
	store        *store.TicketStore
	hub          *wsAdapter.Hub
	errorHandler *ErrorHandler
	logger       *slog.Logger
}

// NewTicketHandler creates a new ticket handler. The hub may be nil when
// real-time board updates are not wired (tests).
func NewTicketHandler(
	ticketStore *store.TicketStore,
	hub *wsAdapter.Hub,
	errorHandler *ErrorHandler,
	logger *slog.Logger,
) *TicketHandler {
	return &TicketHandler{
		store:        ticketStore,
		hub:          hub,
		errorHandler: errorHandler,
		logger:       logger.With("handler", "ticket"),
	}
}

// RegisterRoutes sets up the routing for all ticket endpoints.
func (h *TicketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListTickets)
	r.Post("/", h.HandleCreateTicket)

	// Routes for a specific ticket
	r.Route("/{ticketID}", func(r chi.Router) {
		r.Get("/", h.HandleGetTicket)
		r.Post("/resolve", h.HandleResolveTicket)
	})
}

// --- Request/Response DTOs ---

// CreateTicketRequest defines the expected JSON body for creating a ticket
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Requester   string `json:"requester"`
	Contact     string `json:"contact"`
}

// Validate validates the create ticket request
func (r *CreateTicketRequest) Validate() error {
	v := validation.NewValidator()

	v.Required("title", r.Title).
		MaxLength("title", r.Title, domain.MaxTitleLength)

	v.MaxLength("description", r.Description, domain.MaxDescriptionLength)
	v.MaxLength("requester", r.Requester, domain.MaxRequesterLength)
	v.MaxLength("contact", r.Contact, domain.MaxContactLength)

	if v.HasErrors() {
		return v.Errors()
	}
	return nil
}

// ResolveTicketRequest defines the expected JSON body for resolving a ticket
type ResolveTicketRequest struct {
	Resolution string `json:"resolution"`
}

// Validate validates the resolve ticket request
func (r *ResolveTicketRequest) Validate() error {
	v := validation.NewValidator()

	v.Required("resolution", r.Resolution).
		MaxLength("resolution", r.Resolution, domain.MaxResolutionLength)

	if v.HasErrors() {
		return v.Errors()
	}
	return nil
}

// TicketDTO defines the JSON response for tickets.
type TicketDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Requester   string  `json:"requester,omitempty"`
	Contact     string  `json:"contact,omitempty"`
	Status      string  `json:"status"`
	Resolution  string  `json:"resolution,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	ResolvedAt  *string `json:"resolvedAt,omitempty"`
}

func toTicketDTO(ticket domain.Ticket) TicketDTO {
	var resolvedAt *string
	if ticket.ResolvedAt != nil {
		value := ticket.ResolvedAt.Format(time.RFC3339)
		resolvedAt = &value
	}

	return TicketDTO{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Requester:   ticket.Requester,
		Contact:     ticket.Contact,
		Status:      string(ticket.Status),
		Resolution:  ticket.Resolution,
		CreatedAt:   ticket.CreatedAt.Format(time.RFC3339),
		ResolvedAt:  resolvedAt,
	}
}

func toTicketDTOs(tickets []domain.Ticket) []TicketDTO {
	response := make([]TicketDTO, 0, len(tickets))
	for _, ticket := range tickets {
		response = append(response, toTicketDTO(ticket))
	}
	return response
}

// --- Handlers ---

// HandleListTickets handles GET /tickets
func (h *TicketHandler) HandleListTickets(w http.ResponseWriter, r *http.Request) {
	status := validation.ParseStringQueryParam(r, "status")

	v := validation.NewValidator()
	v.OneOf("status", status, []string{
		string(store.FilterOpen),
		string(store.FilterResolved),
		string(store.FilterAll),
	})
	if v.HasErrors() {
		h.errorHandler.Handle(w, r, v.Errors())
		return
	}

	tickets := h.store.List(store.ParseStatusFilter(status))
	WriteList(w, toTicketDTOs(tickets))
}

// HandleCreateTicket handles POST /tickets
func (h *TicketHandler) HandleCreateTicket(w http.ResponseWriter, r *http.Request) {
	req, err := validation.DecodeAndValidate[CreateTicketRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	ticket, err := h.store.Create(domain.TicketParams{
		Title:       req.Title,
		Description: req.Description,
		Requester:   req.Requester,
		Contact:     req.Contact,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("ticket created",
		"ticket_id", ticket.ID,
		"request_id", GetRequestID(r.Context()),
	)

	h.broadcast(domain.EventTicketCreated, ticket)
	WriteCreated(w, toTicketDTO(ticket))
}

// HandleGetTicket handles GET /tickets/{ticketID}
func (h *TicketHandler) HandleGetTicket(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseIDParam(chi.URLParam(r, "ticketID"))
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	ticket, err := h.store.Get(id)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteSuccess(w, toTicketDTO(ticket))
}

// HandleResolveTicket handles POST /tickets/{ticketID}/resolve
func (h *TicketHandler) HandleResolveTicket(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseIDParam(chi.URLParam(r, "ticketID"))
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	req, err := validation.DecodeAndValidate[ResolveTicketRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	ticket, err := h.store.Resolve(id, req.Resolution)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("ticket resolved",
		"ticket_id", ticket.ID,
		"request_id", GetRequestID(r.Context()),
	)

	h.broadcast(domain.EventTicketResolved, ticket)
	WriteSuccess(w, toTicketDTO(ticket))
}

// broadcast sends a board event to connected websocket clients.
func (h *TicketHandler) broadcast(eventType domain.EventType, ticket domain.Ticket) {
	if h.hub == nil {
		return
	}
	h.hub.Broadcast(domain.Event{
		Type:     eventType,
		TicketID: ticket.ID,
		Payload:  toTicketDTO(ticket),
	})
}
