package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
)

// MemoryStore keeps venues, bookings and blocked dates in process memory.
// It honours the same contracts as the Postgres repos, including the
// (venue, date) unique indexes and the venue foreign keys, so it can stand in
// for the database in tests and in STORE_BACKEND=memory deployments.
// A single mutex serialises every operation.
type MemoryStore struct {
	mu       sync.RWMutex
	now      func() time.Time
	venues   []domain.Venue
	bookings []domain.Booking
	blocks   []domain.BlockedDate
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: func() time.Time { return time.Now().UTC() }}
}

// Venues returns a VenueRepo view of the store.
func (s *MemoryStore) Venues() VenueRepo { return memVenueRepo{s} }

// Bookings returns a BookingRepo view of the store.
func (s *MemoryStore) Bookings() BookingRepo { return memBookingRepo{s} }

// BlockedDates returns a BlockedDateRepo view of the store.
func (s *MemoryStore) BlockedDates() BlockedDateRepo { return memBlockedDateRepo{s} }

// hasVenue must be called with s.mu held.
func (s *MemoryStore) hasVenue(id uuid.UUID) bool {
	for _, v := range s.venues {
		if v.ID == id {
			return true
		}
	}
	return false
}

// ---- venues ----------------------------------------------------------------

type memVenueRepo struct{ s *MemoryStore }

func (r memVenueRepo) Create(_ context.Context, venue domain.Venue) (domain.Venue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	venue.ID = uuid.New()
	venue.CreatedAt = r.s.now()
	r.s.venues = append(r.s.venues, venue)
	return venue, nil
}

func (r memVenueRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Venue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, v := range r.s.venues {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Venue{}, fmt.Errorf("repo.VenueRepo.GetByID: %w", domain.ErrNotFound)
}

func (r memVenueRepo) List(_ context.Context) ([]domain.Venue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]domain.Venue(nil), r.s.venues...), nil
}

// ---- bookings --------------------------------------------------------------

type memBookingRepo struct{ s *MemoryStore }

func (r memBookingRepo) Create(_ context.Context, booking domain.Booking) (domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.hasVenue(booking.VenueID) {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w: venue %s", domain.ErrNotFound, booking.VenueID)
	}
	booking.BookingDate = domain.CalendarDate(booking.BookingDate)
	for _, b := range r.s.bookings {
		if b.VenueID == booking.VenueID && b.BookingDate.Equal(booking.BookingDate) {
			return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w: bookings_venue_date_key", domain.ErrConflict)
		}
	}

	booking.ID = uuid.New()
	booking.CreatedAt = r.s.now()
	r.s.bookings = append(r.s.bookings, booking)
	return booking, nil
}

func (r memBookingRepo) List(_ context.Context) ([]domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]domain.Booking(nil), r.s.bookings...), nil
}

func (r memBookingRepo) ListByVenue(_ context.Context, venueID uuid.UUID) ([]domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.Booking
	for _, b := range r.s.bookings {
		if b.VenueID == venueID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r memBookingRepo) FindByVenueAndDate(_ context.Context, venueID uuid.UUID, date time.Time) (domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	day := domain.CalendarDate(date)
	for _, b := range r.s.bookings {
		if b.VenueID == venueID && b.BookingDate.Equal(day) {
			return b, nil
		}
	}
	return domain.Booking{}, fmt.Errorf("repo.BookingRepo.FindByVenueAndDate: %w", domain.ErrNotFound)
}

// ---- blocked dates ---------------------------------------------------------

type memBlockedDateRepo struct{ s *MemoryStore }

func (r memBlockedDateRepo) Create(_ context.Context, block domain.BlockedDate) (domain.BlockedDate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.hasVenue(block.VenueID) {
		return domain.BlockedDate{}, fmt.Errorf("repo.BlockedDateRepo.Create: %w: venue %s", domain.ErrNotFound, block.VenueID)
	}
	block.BlockedDate = domain.CalendarDate(block.BlockedDate)
	for _, b := range r.s.blocks {
		if b.VenueID == block.VenueID && b.BlockedDate.Equal(block.BlockedDate) {
			return domain.BlockedDate{}, fmt.Errorf("repo.BlockedDateRepo.Create: %w: blocked_dates_venue_date_key", domain.ErrConflict)
		}
	}

	block.ID = uuid.New()
	block.CreatedAt = r.s.now()
	r.s.blocks = append(r.s.blocks, block)
	return block, nil
}

func (r memBlockedDateRepo) ListByVenue(_ context.Context, venueID uuid.UUID) ([]domain.BlockedDate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.BlockedDate
	for _, b := range r.s.blocks {
		if b.VenueID == venueID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r memBlockedDateRepo) FindByVenueAndDate(_ context.Context, venueID uuid.UUID, date time.Time) (domain.BlockedDate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	day := domain.CalendarDate(date)
	for _, b := range r.s.blocks {
		if b.VenueID == venueID && b.BlockedDate.Equal(day) {
			return b, nil
		}
	}
	return domain.BlockedDate{}, fmt.Errorf("repo.BlockedDateRepo.FindByVenueAndDate: %w", domain.ErrNotFound)
}
