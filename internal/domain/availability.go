package domain

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindowDays is the length of the availability horizon,
// counted from today inclusive.
const AvailabilityWindowDays = 30

// Availability describes which dates of a venue are free within the window.
// BookedDates and BlockedDates are not limited to the window: they hold every
// booked or blocked date on record, in store order.
type Availability struct {
	VenueID        uuid.UUID
	AvailableDates []time.Time
	BookedDates    []time.Time
	BlockedDates   []time.Time
}
