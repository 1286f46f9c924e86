package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatusConfirmed is the status every booking is created with.
const BookingStatusConfirmed = "confirmed"

// Booking is a confirmed reservation of a venue for one calendar date.
// There is at most one Booking per (VenueID, BookingDate).
type Booking struct {
	ID          uuid.UUID
	VenueID     uuid.UUID
	BookingDate time.Time // midnight UTC, see CalendarDate
	UserName    string
	UserEmail   string
	Status      string
	CreatedAt   time.Time
}
