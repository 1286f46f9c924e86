package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
	"github.com/pkordes/eazyvenue/backend/internal/repo"
)

// ---- mock repos ------------------------------------------------------------
// Hand-written test doubles. Set only the method fields your test needs;
// calling an unset method panics, which flags an unexpected repo call.

type mockVenueRepo struct {
	create  func(ctx context.Context, v domain.Venue) (domain.Venue, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Venue, error)
	list    func(ctx context.Context) ([]domain.Venue, error)
}

func (m *mockVenueRepo) Create(ctx context.Context, v domain.Venue) (domain.Venue, error) {
	return m.create(ctx, v)
}
func (m *mockVenueRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Venue, error) {
	return m.getByID(ctx, id)
}
func (m *mockVenueRepo) List(ctx context.Context) ([]domain.Venue, error) {
	return m.list(ctx)
}

type mockBookingRepo struct {
	create             func(ctx context.Context, b domain.Booking) (domain.Booking, error)
	list               func(ctx context.Context) ([]domain.Booking, error)
	listByVenue        func(ctx context.Context, venueID uuid.UUID) ([]domain.Booking, error)
	findByVenueAndDate func(ctx context.Context, venueID uuid.UUID, date time.Time) (domain.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	return m.create(ctx, b)
}
func (m *mockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	return m.list(ctx)
}
func (m *mockBookingRepo) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.Booking, error) {
	return m.listByVenue(ctx, venueID)
}
func (m *mockBookingRepo) FindByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) (domain.Booking, error) {
	return m.findByVenueAndDate(ctx, venueID, date)
}

type mockBlockedDateRepo struct {
	create             func(ctx context.Context, b domain.BlockedDate) (domain.BlockedDate, error)
	listByVenue        func(ctx context.Context, venueID uuid.UUID) ([]domain.BlockedDate, error)
	findByVenueAndDate func(ctx context.Context, venueID uuid.UUID, date time.Time) (domain.BlockedDate, error)
}

func (m *mockBlockedDateRepo) Create(ctx context.Context, b domain.BlockedDate) (domain.BlockedDate, error) {
	return m.create(ctx, b)
}
func (m *mockBlockedDateRepo) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.BlockedDate, error) {
	return m.listByVenue(ctx, venueID)
}
func (m *mockBlockedDateRepo) FindByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) (domain.BlockedDate, error) {
	return m.findByVenueAndDate(ctx, venueID, date)
}

// compile-time checks: mocks must satisfy the repo interfaces.
var (
	_ repo.VenueRepo       = (*mockVenueRepo)(nil)
	_ repo.BookingRepo     = (*mockBookingRepo)(nil)
	_ repo.BlockedDateRepo = (*mockBlockedDateRepo)(nil)
)

// ---- helpers ---------------------------------------------------------------

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func venueExists(_ context.Context, id uuid.UUID) (domain.Venue, error) {
	return domain.Venue{ID: id, Name: "Hall A"}, nil
}

func venueMissing(_ context.Context, _ uuid.UUID) (domain.Venue, error) {
	return domain.Venue{}, domain.ErrNotFound
}

func noBooking(_ context.Context, _ uuid.UUID, _ time.Time) (domain.Booking, error) {
	return domain.Booking{}, domain.ErrNotFound
}

func noBlock(_ context.Context, _ uuid.UUID, _ time.Time) (domain.BlockedDate, error) {
	return domain.BlockedDate{}, domain.ErrNotFound
}
