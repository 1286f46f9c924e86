// Package service contains the business logic for the EazyVenue API.
// Services validate inputs, enforce the booking invariants, and orchestrate
// repo calls. No SQL lives here; services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
	"github.com/pkordes/eazyvenue/backend/internal/repo"
)

// maxVenueNameLen is the longest venue name accepted, in characters.
const maxVenueNameLen = 100

// VenueService implements venue creation, lookup and availability.
// It holds the booking and blocked-date repos because availability is
// derived from both.
type VenueService struct {
	venues   repo.VenueRepo
	bookings repo.BookingRepo
	blocks   repo.BlockedDateRepo
	now      func() time.Time
}

// NewVenueService constructs a VenueService backed by the provided repos.
// now supplies the current time for availability; nil means time.Now.
func NewVenueService(venues repo.VenueRepo, bookings repo.BookingRepo, blocks repo.BlockedDateRepo, now func() time.Time) *VenueService {
	if now == nil {
		now = time.Now
	}
	return &VenueService{venues: venues, bookings: bookings, blocks: blocks, now: now}
}

// Create validates and persists a new venue.
// Returns domain.ErrValidation if input violates business rules.
func (s *VenueService) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	if err := validateVenue(venue); err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.Create: %w", err)
	}
	result, err := s.venues.Create(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single venue by ID.
// Returns domain.ErrNotFound if the venue does not exist.
func (s *VenueService) GetByID(ctx context.Context, id uuid.UUID) (domain.Venue, error) {
	result, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all venues in store order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VenueService) List(ctx context.Context) ([]domain.Venue, error) {
	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VenueService.List: %w", err)
	}
	if venues == nil {
		return []domain.Venue{}, nil
	}
	return venues, nil
}

// Availability reports which of the next AvailabilityWindowDays dates,
// starting today, are free for the venue.
// Returns domain.ErrNotFound if the venue does not exist.
func (s *VenueService) Availability(ctx context.Context, venueID uuid.UUID) (domain.Availability, error) {
	if _, err := s.venues.GetByID(ctx, venueID); err != nil {
		return domain.Availability{}, fmt.Errorf("service.VenueService.Availability: %w", err)
	}

	bookings, err := s.bookings.ListByVenue(ctx, venueID)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("service.VenueService.Availability: %w", err)
	}
	blocks, err := s.blocks.ListByVenue(ctx, venueID)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("service.VenueService.Availability: %w", err)
	}

	booked := make([]time.Time, len(bookings))
	for i, b := range bookings {
		booked[i] = b.BookingDate
	}
	blocked := make([]time.Time, len(blocks))
	for i, b := range blocks {
		blocked[i] = b.BlockedDate
	}

	return ComputeAvailability(venueID, s.now(), booked, blocked), nil
}

// ComputeAvailability builds the availability of a venue for the window
// starting on the calendar date of today. A candidate date is available iff
// it appears in neither booked nor blocked. booked and blocked are returned
// unfiltered and in the order given.
func ComputeAvailability(venueID uuid.UUID, today time.Time, booked, blocked []time.Time) domain.Availability {
	taken := make(map[string]struct{}, len(booked)+len(blocked))
	for _, d := range booked {
		taken[domain.DateKey(d)] = struct{}{}
	}
	for _, d := range blocked {
		taken[domain.DateKey(d)] = struct{}{}
	}

	start := domain.CalendarDate(today)
	available := make([]time.Time, 0, domain.AvailabilityWindowDays)
	for i := 0; i < domain.AvailabilityWindowDays; i++ {
		candidate := start.AddDate(0, 0, i)
		if _, ok := taken[candidate.Format(domain.DateLayout)]; !ok {
			available = append(available, candidate)
		}
	}

	return domain.Availability{
		VenueID:        venueID,
		AvailableDates: available,
		BookedDates:    booked,
		BlockedDates:   blocked,
	}
}

// validateVenue enforces the rules for a new venue.
//   - Name must be non-empty and at most maxVenueNameLen characters.
//   - Location must be non-empty.
//   - Capacity and PricePerDay must be strictly positive.
func validateVenue(v domain.Venue) error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(v.Name) > maxVenueNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", domain.ErrValidation, maxVenueNameLen)
	}
	if strings.TrimSpace(v.Location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if v.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be greater than 0", domain.ErrValidation)
	}
	if v.PricePerDay <= 0 {
		return fmt.Errorf("%w: price_per_day must be greater than 0", domain.ErrValidation)
	}
	return nil
}
