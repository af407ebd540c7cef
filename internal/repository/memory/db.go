// Package memory is an in-process ledger with the same guarantees as the
// Postgres one: no overlapping active stays per room, compare-and-swap status
// transitions, and at most one successful payment per booking.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stpnv0/VillaBooker/internal/domain"
)

type lookupKey struct {
	code string
	hash string
}

// shelf serialises writes that touch one room's calendar.
type shelf struct {
	mu       sync.Mutex
	bookings []*domain.Booking
}

// Lock order: shelf.mu before DB.mu.
type DB struct {
	mu       sync.RWMutex
	shelves  map[string]*shelf
	byID     map[string]*domain.Booking
	byLookup map[lookupKey]*domain.Booking
	payments map[string][]domain.Payment
}

func New() *DB {
	return &DB{
		shelves:  make(map[string]*shelf),
		byID:     make(map[string]*domain.Booking),
		byLookup: make(map[lookupKey]*domain.Booking),
		payments: make(map[string][]domain.Payment),
	}
}

func (db *DB) shelf(roomID string) *shelf {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, ok := db.shelves[roomID]
	if !ok {
		s = &shelf{}
		db.shelves[roomID] = s
	}
	return s
}

func (db *DB) CreateHold(_ context.Context, b *domain.Booking) error {
	s := db.shelf(b.RoomID)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.IsActive() && existing.Overlaps(b.CheckIn, b.CheckOut) {
			return domain.ErrSlotUnavailable
		}
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	key := lookupKey{code: b.LookupCode, hash: b.GuestContactHash}
	if _, taken := db.byLookup[key]; taken {
		return domain.ErrLookupCodeTaken
	}

	stored := clone(b)
	db.byID[stored.ID] = stored
	db.byLookup[key] = stored
	s.bookings = append(s.bookings, stored)

	return nil
}

func (db *DB) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	b, ok := db.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return clone(b), nil
}

func (db *DB) FindByLookup(_ context.Context, code, contactHash string) (*domain.Booking, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	b, ok := db.byLookup[lookupKey{code: code, hash: contactHash}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(b), nil
}

func (db *DB) Transition(
	_ context.Context,
	id string,
	from, to domain.BookingStatus,
	meta domain.TransitionMeta,
) error {
	db.mu.RLock()
	b, ok := db.byID[id]
	db.mu.RUnlock()
	if !ok {
		return domain.ErrBookingNotFound
	}

	s := db.shelf(b.RoomID)
	s.mu.Lock()
	defer s.mu.Unlock()

	db.mu.Lock()
	defer db.mu.Unlock()

	if b.Status != from {
		return domain.ErrStaleTransition
	}

	b.Status = to
	b.ExpiresAt = nil
	b.UpdatedAt = time.Now().UTC()
	if to == domain.BookingStatusCancelled {
		b.CancelReason = meta.Reason
		b.CancelNote = meta.Note
	}

	return nil
}

func (db *DB) CancelExpired(_ context.Context, now time.Time) ([]*domain.Booking, error) {
	db.mu.RLock()
	shelves := make([]*shelf, 0, len(db.shelves))
	for _, s := range db.shelves {
		shelves = append(shelves, s)
	}
	db.mu.RUnlock()

	var res []*domain.Booking
	for _, s := range shelves {
		s.mu.Lock()
		db.mu.Lock()
		for _, b := range s.bookings {
			if !b.HoldExpired(now) {
				continue
			}
			b.Status = domain.BookingStatusCancelled
			b.CancelReason = domain.CancelReasonExpired
			b.ExpiresAt = nil
			b.UpdatedAt = now
			res = append(res, clone(b))
		}
		db.mu.Unlock()
		s.mu.Unlock()
	}

	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })

	return res, nil
}

func clone(b *domain.Booking) *domain.Booking {
	c := *b
	c.Options = append([]string(nil), b.Options...)
	c.Quote.Breakdown = append([]domain.NightPrice(nil), b.Quote.Breakdown...)
	if b.ExpiresAt != nil {
		t := *b.ExpiresAt
		c.ExpiresAt = &t
	}
	return &c
}
