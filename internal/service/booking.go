package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
	"github.com/pkordes/eazyvenue/backend/internal/repo"
)

// BookingService implements the booking and date-blocking workflows.
//
// Both workflows check then insert without a transaction. The unique indexes
// on (venue, date) turn a racing duplicate of the same kind into the same
// conflict the check would have reported; a booking racing a block on the
// same date is not caught.
type BookingService struct {
	venues   repo.VenueRepo
	bookings repo.BookingRepo
	blocks   repo.BlockedDateRepo
	checker  *ConflictChecker
}

// NewBookingService constructs a BookingService backed by the provided repos.
func NewBookingService(venues repo.VenueRepo, bookings repo.BookingRepo, blocks repo.BlockedDateRepo) *BookingService {
	return &BookingService{
		venues:   venues,
		bookings: bookings,
		blocks:   blocks,
		checker:  NewConflictChecker(bookings, blocks),
	}
}

// Book reserves a venue for one calendar date.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// venue does not exist, domain.ErrAlreadyBooked if the date is booked, and
// domain.ErrDateBlocked if the owner blocked it.
func (s *BookingService) Book(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	if err := validateBooking(booking); err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Book: %w", err)
	}
	if _, err := s.venues.GetByID(ctx, booking.VenueID); err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Book: %w", err)
	}

	booking.BookingDate = domain.CalendarDate(booking.BookingDate)
	state, err := s.checker.Check(ctx, booking.VenueID, booking.BookingDate)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Book: %w", err)
	}
	switch state {
	case DateBooked:
		return domain.Booking{}, fmt.Errorf("service.BookingService.Book: %w", domain.ErrAlreadyBooked)
	case DateBlocked:
		return domain.Booking{}, fmt.Errorf("service.BookingService.Book: %w", domain.ErrDateBlocked)
	}

	booking.Status = domain.BookingStatusConfirmed
	result, err := s.bookings.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			err = domain.ErrAlreadyBooked
		}
		return domain.Booking{}, fmt.Errorf("service.BookingService.Book: %w", err)
	}
	return result, nil
}

// BlockDate withdraws a venue's date from availability.
// An empty reason becomes domain.DefaultBlockReason.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// venue does not exist, domain.ErrDateAlreadyBooked if the date is booked,
// and domain.ErrDateAlreadyBlocked if it is blocked already.
func (s *BookingService) BlockDate(ctx context.Context, block domain.BlockedDate) (domain.BlockedDate, error) {
	if block.BlockedDate.IsZero() {
		return domain.BlockedDate{}, fmt.Errorf("service.BookingService.BlockDate: %w: blocked_date is required", domain.ErrValidation)
	}
	if _, err := s.venues.GetByID(ctx, block.VenueID); err != nil {
		return domain.BlockedDate{}, fmt.Errorf("service.BookingService.BlockDate: %w", err)
	}

	block.BlockedDate = domain.CalendarDate(block.BlockedDate)
	state, err := s.checker.Check(ctx, block.VenueID, block.BlockedDate)
	if err != nil {
		return domain.BlockedDate{}, fmt.Errorf("service.BookingService.BlockDate: %w", err)
	}
	switch state {
	case DateBooked:
		return domain.BlockedDate{}, fmt.Errorf("service.BookingService.BlockDate: %w", domain.ErrDateAlreadyBooked)
	case DateBlocked:
		return domain.BlockedDate{}, fmt.Errorf("service.BookingService.BlockDate: %w", domain.ErrDateAlreadyBlocked)
	}

	if strings.TrimSpace(block.Reason) == "" {
		block.Reason = domain.DefaultBlockReason
	}
	result, err := s.blocks.Create(ctx, block)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			err = domain.ErrDateAlreadyBlocked
		}
		return domain.BlockedDate{}, fmt.Errorf("service.BookingService.BlockDate: %w", err)
	}
	return result, nil
}

// List returns every booking in store order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.List: %w", err)
	}
	if bookings == nil {
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

// ListByVenue returns the bookings of one venue.
// Returns domain.ErrNotFound if the venue does not exist.
func (s *BookingService) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.Booking, error) {
	if _, err := s.venues.GetByID(ctx, venueID); err != nil {
		return nil, fmt.Errorf("service.BookingService.ListByVenue: %w", err)
	}
	bookings, err := s.bookings.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListByVenue: %w", err)
	}
	if bookings == nil {
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

// ListBlockedByVenue returns the blocked dates of one venue.
// Returns domain.ErrNotFound if the venue does not exist.
func (s *BookingService) ListBlockedByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.BlockedDate, error) {
	if _, err := s.venues.GetByID(ctx, venueID); err != nil {
		return nil, fmt.Errorf("service.BookingService.ListBlockedByVenue: %w", err)
	}
	blocks, err := s.blocks.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListBlockedByVenue: %w", err)
	}
	if blocks == nil {
		return []domain.BlockedDate{}, nil
	}
	return blocks, nil
}

// validateBooking enforces the rules for a new booking.
//   - BookingDate must be set.
//   - UserName must be non-empty.
//   - UserEmail must have the shape of an email address.
func validateBooking(b domain.Booking) error {
	if b.BookingDate.IsZero() {
		return fmt.Errorf("%w: booking_date is required", domain.ErrValidation)
	}
	if strings.TrimSpace(b.UserName) == "" {
		return fmt.Errorf("%w: user_name is required", domain.ErrValidation)
	}
	if !domain.ValidEmail(b.UserEmail) {
		return fmt.Errorf("%w: user_email must be a valid email address", domain.ErrValidation)
	}
	return nil
}
