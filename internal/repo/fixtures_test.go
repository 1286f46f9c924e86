package repo_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
)

// venueFixture returns a domain.Venue with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func venueFixture(name string) domain.Venue {
	return domain.Venue{
		Name:        name,
		Location:    "Bengaluru",
		Capacity:    100,
		PricePerDay: 500,
		Description: "Banquet hall",
		Amenities:   "parking, wifi",
	}
}

func bookingFixture(venueID uuid.UUID, date time.Time) domain.Booking {
	return domain.Booking{
		VenueID:     venueID,
		BookingDate: date,
		UserName:    "alice",
		UserEmail:   "alice@x.com",
		Status:      domain.BookingStatusConfirmed,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
