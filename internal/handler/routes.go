package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a chi router serving every endpoint of the API.
// Middleware is the caller's concern; main.go mounts this under its own stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get("/venues", s.ListVenues)
	r.Post("/venues", s.CreateVenue)
	r.Get("/venues/{id}", s.GetVenue)
	r.Get("/venues/{id}/availability", s.GetAvailability)
	r.Get("/venues/{id}/bookings", s.ListVenueBookings)
	r.Get("/venues/{id}/blocked-dates", s.ListVenueBlockedDates)

	r.Get("/bookings", s.ListBookings)
	r.Post("/bookings", s.CreateBooking)
	r.Post("/block-date", s.BlockDate)

	r.Get("/analytics/dashboard", s.GetDashboard)

	return r
}
