package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
)

// CreateBookingRequest is the body of POST /bookings.
type CreateBookingRequest struct {
	VenueID     uuid.UUID           `json:"venue_id" validate:"required"`
	BookingDate *openapi_types.Date `json:"booking_date" validate:"required"`
	UserName    string              `json:"user_name" validate:"required"`
	UserEmail   string              `json:"user_email" validate:"required,email_shape"`
}

// BlockDateRequest is the body of POST /block-date.
type BlockDateRequest struct {
	VenueID     uuid.UUID           `json:"venue_id" validate:"required"`
	BlockedDate *openapi_types.Date `json:"blocked_date" validate:"required"`
	Reason      string              `json:"reason"`
}

// Booking is the API representation of a booking.
type Booking struct {
	ID          uuid.UUID          `json:"id"`
	VenueID     uuid.UUID          `json:"venue_id"`
	BookingDate openapi_types.Date `json:"booking_date"`
	UserName    string             `json:"user_name"`
	UserEmail   string             `json:"user_email"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

// BlockedDate is the API representation of a blocked date.
type BlockedDate struct {
	ID          uuid.UUID          `json:"id"`
	VenueID     uuid.UUID          `json:"venue_id"`
	BlockedDate openapi_types.Date `json:"blocked_date"`
	Reason      string             `json:"reason"`
	CreatedAt   time.Time          `json:"created_at"`
}

// MessageResponse acknowledges an operation that returns no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateBooking handles POST /bookings.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var body CreateBookingRequest
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := s.bookings.Book(r.Context(), domain.Booking{
		VenueID:     body.VenueID,
		BookingDate: body.BookingDate.Time,
		UserName:    body.UserName,
		UserEmail:   body.UserEmail,
	})
	if err != nil {
		s.writeServiceError(w, r, err, venueNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, bookingToResponse(created))
}

// ListBookings handles GET /bookings.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.bookings.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, venueNotFound)
		return
	}
	writeJSON(w, http.StatusOK, bookingsToResponse(bookings))
}

// ListVenueBookings handles GET /venues/{id}/bookings.
func (s *Server) ListVenueBookings(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(w, r)
	if !ok {
		return
	}

	bookings, err := s.bookings.ListByVenue(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, venueNotFound)
		return
	}
	writeJSON(w, http.StatusOK, bookingsToResponse(bookings))
}

// BlockDate handles POST /block-date.
func (s *Server) BlockDate(w http.ResponseWriter, r *http.Request) {
	var body BlockDateRequest
	if !decodeBody(w, r, &body) {
		return
	}

	_, err := s.bookings.BlockDate(r.Context(), domain.BlockedDate{
		VenueID:     body.VenueID,
		BlockedDate: body.BlockedDate.Time,
		Reason:      body.Reason,
	})
	if err != nil {
		s.writeServiceError(w, r, err, venueNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Date blocked successfully"})
}

// ListVenueBlockedDates handles GET /venues/{id}/blocked-dates.
func (s *Server) ListVenueBlockedDates(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(w, r)
	if !ok {
		return
	}

	blocks, err := s.bookings.ListBlockedByVenue(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, venueNotFound)
		return
	}

	resp := make([]BlockedDate, len(blocks))
	for i, b := range blocks {
		resp[i] = BlockedDate{
			ID:          b.ID,
			VenueID:     b.VenueID,
			BlockedDate: openapi_types.Date{Time: b.BlockedDate},
			Reason:      b.Reason,
			CreatedAt:   b.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- mapping helpers --------------------------------------------------------

func bookingToResponse(b domain.Booking) Booking {
	return Booking{
		ID:          b.ID,
		VenueID:     b.VenueID,
		BookingDate: openapi_types.Date{Time: b.BookingDate},
		UserName:    b.UserName,
		UserEmail:   b.UserEmail,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

func bookingsToResponse(bookings []domain.Booking) []Booking {
	out := make([]Booking, len(bookings))
	for i, b := range bookings {
		out[i] = bookingToResponse(b)
	}
	return out
}
