// Package domain contains the core data types for the EazyVenue booking API.
// This package has no dependencies on other internal packages and is imported
// by every one of them (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Venue is a bookable physical space with a capacity and a daily price.
// Venues are never updated or deleted once created.
// Amenities is a free-text list kept as a single string.
type Venue struct {
	ID          uuid.UUID
	Name        string
	Location    string
	Capacity    int
	PricePerDay float64
	Description string
	Amenities   string
	CreatedAt   time.Time
}
