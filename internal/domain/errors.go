package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. non-positive capacity, malformed email).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write would give a (venue, date) pair a
// second booking or block. Repos return it bare on unique-index violations;
// services return one of the more specific errors below, all of which wrap it.
// Handlers should map this to HTTP 400.
var ErrConflict = errors.New("conflict")

// Conflicts raised by the booking workflow.
var (
	ErrAlreadyBooked = fmt.Errorf("%w: venue already booked for this date", ErrConflict)
	ErrDateBlocked   = fmt.Errorf("%w: date is blocked by venue owner", ErrConflict)
)

// Conflicts raised by the blocking workflow.
var (
	ErrDateAlreadyBooked  = fmt.Errorf("%w: date is already booked", ErrConflict)
	ErrDateAlreadyBlocked = fmt.Errorf("%w: date is already blocked", ErrConflict)
)
