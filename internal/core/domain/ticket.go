package domain

import (
	"strings"
	"time"

	apperrors "github.com/lorrc/helpdesk-backend/internal/core/errors"
)

// Field length limits enforced at ticket creation and resolution.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 4000
	MaxResolutionLength  = 4000
	MaxRequesterLength   = 120
	MaxContactLength     = 120
)

// TicketStatus represents the possible states of a ticket.
type TicketStatus string

const (
	StatusOpen     TicketStatus = "OPEN"
	StatusResolved TicketStatus = "RESOLVED"
)

// IsValid reports whether the status is one of the known states.
func (s TicketStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusResolved:
		return true
	}
	return false
}

// Ticket is the core domain entity. A ticket starts OPEN and transitions
// exactly once to RESOLVED; there is no reopen and no delete.
type Ticket struct {
	ID          int64
	Title       string
	Description string
	Requester   string
	Contact     string
	Status      TicketStatus
	Resolution  string
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// TicketParams carries caller-supplied fields for a new ticket. All fields
// are trimmed before validation; only Title is required.
type TicketParams struct {
	Title       string
	Description string
	Requester   string
	Contact     string
}

// NewTicket is a factory function to create a valid new ticket. The ID is
// assigned later by the store.
func NewTicket(params TicketParams) (*Ticket, error) {
	title := strings.TrimSpace(params.Title)
	description := strings.TrimSpace(params.Description)
	requester := strings.TrimSpace(params.Requester)
	contact := strings.TrimSpace(params.Contact)

	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}
	if len(title) > MaxTitleLength {
		return nil, apperrors.ErrTitleTooLong
	}
	if len(description) > MaxDescriptionLength {
		return nil, apperrors.ErrDescriptionTooLong
	}
	if len(requester) > MaxRequesterLength {
		return nil, apperrors.ErrRequesterTooLong
	}
	if len(contact) > MaxContactLength {
		return nil, apperrors.ErrContactTooLong
	}

	return &Ticket{
		Title:       title,
		Description: description,
		Requester:   requester,
		Contact:     contact,
		Status:      StatusOpen,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Resolve transitions the ticket to RESOLVED with the given resolution note,
// enforcing business rules. RESOLVED is terminal; a second resolve fails and
// leaves the ticket unchanged.
func (t *Ticket) Resolve(resolution string) error {
	if t.Status == StatusResolved {
		return apperrors.ErrTicketResolved
	}

	resolution = strings.TrimSpace(resolution)
	if resolution == "" {
		return apperrors.ErrResolutionRequired
	}
	if len(resolution) > MaxResolutionLength {
		return apperrors.ErrResolutionTooLong
	}

	t.Status = StatusResolved
	t.Resolution = resolution
	now := time.Now().UTC()
	t.ResolvedAt = &now
	return nil
}

// IsOpen reports whether the ticket still awaits a resolution.
func (t *Ticket) IsOpen() bool {
	return t.Status == StatusOpen
}

// Clone returns a deep copy so callers can never mutate store-owned state.
func (t *Ticket) Clone() Ticket {
	clone := *t
	if t.ResolvedAt != nil {
		resolvedAt := *t.ResolvedAt
		clone.ResolvedAt = &resolvedAt
	}
	return clone
}
