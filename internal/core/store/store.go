// Package store holds the authoritative in-memory ticket collection.
//
// All state lives in process memory for the lifetime of one session and is
// discarded on restart. That is a deliberate property of the demo, not a gap:
// nothing here may grow a persistence layer.
package store

import (
	"sync"
	"time"

	"github.com/lorrc/helpdesk-backend/internal/core/domain"
	apperrors "github.com/lorrc/helpdesk-backend/internal/core/errors"
)

// StatusFilter narrows List results by ticket status.
type StatusFilter string

const (
	FilterAll      StatusFilter = "ALL"
	FilterOpen     StatusFilter = "OPEN"
	FilterResolved StatusFilter = "RESOLVED"
)

// Stats summarizes the collection for the board header.
type Stats struct {
	Total    int
	Open     int
	Resolved int
}

// TicketStore owns all tickets and provides the only legal ways to create,
// read, and resolve them. Mutations are serialized behind a single mutex so
// ID assignment and state transitions are atomic; reads take the read lock
// and always observe fully-constructed tickets. Callers receive clones,
// never references into the internal collection.
type TicketStore struct {
	mu      sync.RWMutex
	tickets []*domain.Ticket
	byID    map[int64]*domain.Ticket
	nextID  int64
}

// NewStore creates a ticket store. Seed tickets, if any, are adopted in the
// given order and the next ID continues after the highest seeded ID.
func NewStore(seed ...domain.Ticket) *TicketStore {
	s := &TicketStore{
		byID:   make(map[int64]*domain.Ticket),
		nextID: 1,
	}
	for _, t := range seed {
		ticket := t.Clone()
		s.tickets = append(s.tickets, &ticket)
		s.byID[ticket.ID] = &ticket
		if ticket.ID >= s.nextID {
			s.nextID = ticket.ID + 1
		}
	}
	return s
}

// Create validates the params, assigns the next sequential ID and appends
// the new ticket. On any validation error the collection is left unchanged.
func (s *TicketStore) Create(params domain.TicketParams) (domain.Ticket, error) {
	ticket, err := domain.NewTicket(params)
	if err != nil {
		return domain.Ticket{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// ID and CreatedAt are assigned together under the lock so insertion
	// order and creation time order always coincide.
	ticket.ID = s.nextID
	s.nextID++
	ticket.CreatedAt = time.Now().UTC()
	s.tickets = append(s.tickets, ticket)
	s.byID[ticket.ID] = ticket

	return ticket.Clone(), nil
}

// Get returns a clone of the ticket with the given ID.
func (s *TicketStore) Get(id int64) (domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticket, ok := s.byID[id]
	if !ok {
		return domain.Ticket{}, apperrors.ErrTicketNotFound
	}
	return ticket.Clone(), nil
}

// List returns a snapshot of clones in insertion order, which coincides with
// CreatedAt ascending. The zero filter value lists everything.
func (s *TicketStore) List(filter StatusFilter) []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Ticket, 0, len(s.tickets))
	for _, ticket := range s.tickets {
		switch filter {
		case FilterOpen:
			if ticket.Status != domain.StatusOpen {
				continue
			}
		case FilterResolved:
			if ticket.Status != domain.StatusResolved {
				continue
			}
		}
		result = append(result, ticket.Clone())
	}
	return result
}

// Resolve transitions an OPEN ticket to RESOLVED with the given note and
// returns the updated clone. A failed resolve mutates nothing.
func (s *TicketStore) Resolve(id int64, resolution string) (domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.byID[id]
	if !ok {
		return domain.Ticket{}, apperrors.ErrTicketNotFound
	}
	if err := ticket.Resolve(resolution); err != nil {
		return domain.Ticket{}, err
	}
	return ticket.Clone(), nil
}

// Stats counts tickets by status.
func (s *TicketStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{Total: len(s.tickets)}
	for _, ticket := range s.tickets {
		if ticket.Status == domain.StatusOpen {
			stats.Open++
		} else {
			stats.Resolved++
		}
	}
	return stats
}

// ParseStatusFilter maps a raw query value to a StatusFilter. Empty input
// means no filtering; unknown values are rejected by the caller beforehand.
func ParseStatusFilter(raw string) StatusFilter {
	switch raw {
	case string(FilterOpen):
		return FilterOpen
	case string(FilterResolved):
		return FilterResolved
	default:
		return FilterAll
	}
}
