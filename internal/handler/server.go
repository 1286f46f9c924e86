// Package handler implements the HTTP handlers for the EazyVenue API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, venue.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
)

// VenueServicer defines the venue operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the store or service layer.
type VenueServicer interface {
	Create(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Venue, error)
	List(ctx context.Context) ([]domain.Venue, error)
	Availability(ctx context.Context, venueID uuid.UUID) (domain.Availability, error)
}

// BookingServicer defines the booking and blocking operations the handlers depend on.
type BookingServicer interface {
	Book(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	BlockDate(ctx context.Context, block domain.BlockedDate) (domain.BlockedDate, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.Booking, error)
	ListBlockedByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.BlockedDate, error)
}

// AnalyticsServicer defines the dashboard operation the handlers depend on.
type AnalyticsServicer interface {
	Dashboard(ctx context.Context) (domain.Dashboard, error)
}

// Server serves every API endpoint. Wire it in main.go via Server.Routes.
type Server struct {
	venues    VenueServicer
	bookings  BookingServicer
	analytics AnalyticsServicer
	now       func() time.Time
}

// NewServer constructs the Server with all its dependencies.
func NewServer(venues VenueServicer, bookings BookingServicer, analytics AnalyticsServicer) *Server {
	return &Server{
		venues:    venues,
		bookings:  bookings,
		analytics: analytics,
		now:       time.Now,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}
