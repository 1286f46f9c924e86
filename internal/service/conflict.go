package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
	"github.com/pkordes/eazyvenue/backend/internal/repo"
)

// DateState says what, if anything, occupies a venue on a given date.
type DateState int

const (
	DateFree DateState = iota
	DateBooked
	DateBlocked
)

func (s DateState) String() string {
	switch s {
	case DateFree:
		return "free"
	case DateBooked:
		return "booked"
	case DateBlocked:
		return "blocked"
	}
	return fmt.Sprintf("DateState(%d)", int(s))
}

// ConflictChecker determines whether a venue's date is already taken.
type ConflictChecker struct {
	bookings repo.BookingRepo
	blocks   repo.BlockedDateRepo
}

// NewConflictChecker constructs a ConflictChecker over the given repos.
func NewConflictChecker(bookings repo.BookingRepo, blocks repo.BlockedDateRepo) *ConflictChecker {
	return &ConflictChecker{bookings: bookings, blocks: blocks}
}

// Check looks the date up among bookings first, then among blocked dates.
// A booked date reports DateBooked without consulting the blocked dates.
func (c *ConflictChecker) Check(ctx context.Context, venueID uuid.UUID, date time.Time) (DateState, error) {
	_, err := c.bookings.FindByVenueAndDate(ctx, venueID, date)
	switch {
	case err == nil:
		return DateBooked, nil
	case !errors.Is(err, domain.ErrNotFound):
		return DateFree, fmt.Errorf("service.ConflictChecker.Check: %w", err)
	}

	_, err = c.blocks.FindByVenueAndDate(ctx, venueID, date)
	switch {
	case err == nil:
		return DateBlocked, nil
	case !errors.Is(err, domain.ErrNotFound):
		return DateFree, fmt.Errorf("service.ConflictChecker.Check: %w", err)
	}
	return DateFree, nil
}
