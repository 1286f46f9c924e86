package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultBlockReason is used when the owner blocks a date without saying why.
const DefaultBlockReason = "Owner blocked"

// BlockedDate is a date the venue owner has withdrawn from availability.
// There is at most one BlockedDate per (VenueID, BlockedDate), and a blocked
// date is never also booked.
type BlockedDate struct {
	ID          uuid.UUID
	VenueID     uuid.UUID
	BlockedDate time.Time // midnight UTC, see CalendarDate
	Reason      string
	CreatedAt   time.Time
}
