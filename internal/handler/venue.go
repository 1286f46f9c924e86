package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
)

const venueNotFound = "Venue not found"

// CreateVenueRequest is the body of POST /venues.
type CreateVenueRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Location    string  `json:"location" validate:"required"`
	Capacity    int     `json:"capacity" validate:"gt=0"`
	PricePerDay float64 `json:"price_per_day" validate:"gt=0"`
	Description string  `json:"description"`
	Amenities   string  `json:"amenities"`
}

// Venue is the API representation of a venue.
type Venue struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	PricePerDay float64   `json:"price_per_day"`
	Description string    `json:"description"`
	Amenities   string    `json:"amenities"`
	CreatedAt   time.Time `json:"created_at"`
}

// Availability is the body of GET /venues/{id}/availability.
type Availability struct {
	VenueID        uuid.UUID            `json:"venue_id"`
	AvailableDates []openapi_types.Date `json:"available_dates"`
	BlockedDates   []openapi_types.Date `json:"blocked_dates"`
	BookedDates    []openapi_types.Date `json:"booked_dates"`
}

// ListVenues handles GET /venues.
func (s *Server) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := s.venues.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, venueNotFound)
		return
	}

	resp := make([]Venue, len(venues))
	for i, v := range venues {
		resp[i] = venueToResponse(v)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateVenue handles POST /venues.
func (s *Server) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var body CreateVenueRequest
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := s.venues.Create(r.Context(), domain.Venue{
		Name:        body.Name,
		Location:    body.Location,
		Capacity:    body.Capacity,
		PricePerDay: body.PricePerDay,
		Description: body.Description,
		Amenities:   body.Amenities,
	})
	if err != nil {
		s.writeServiceError(w, r, err, venueNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, venueToResponse(created))
}

// GetVenue handles GET /venues/{id}.
func (s *Server) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(w, r)
	if !ok {
		return
	}

	venue, err := s.venues.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, venueNotFound)
		return
	}
	writeJSON(w, http.StatusOK, venueToResponse(venue))
}

// GetAvailability handles GET /venues/{id}/availability.
func (s *Server) GetAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(w, r)
	if !ok {
		return
	}

	avail, err := s.venues.Availability(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, venueNotFound)
		return
	}
	writeJSON(w, http.StatusOK, Availability{
		VenueID:        avail.VenueID,
		AvailableDates: toDates(avail.AvailableDates),
		BlockedDates:   toDates(avail.BlockedDates),
		BookedDates:    toDates(avail.BookedDates),
	})
}

// --- mapping helpers --------------------------------------------------------

func venueToResponse(v domain.Venue) Venue {
	return Venue{
		ID:          v.ID,
		Name:        v.Name,
		Location:    v.Location,
		Capacity:    v.Capacity,
		PricePerDay: v.PricePerDay,
		Description: v.Description,
		Amenities:   v.Amenities,
		CreatedAt:   v.CreatedAt,
	}
}

// toDates converts calendar dates to their wire form. Never returns nil, so
// empty lists encode as [] rather than null.
func toDates(ts []time.Time) []openapi_types.Date {
	out := make([]openapi_types.Date, len(ts))
	for i, t := range ts {
		out[i] = openapi_types.Date{Time: t}
	}
	return out
}
