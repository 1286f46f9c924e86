package handler

import (
	"net/http"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
)

// Dashboard is the body of GET /analytics/dashboard.
// TopVenue and TopUser encode as null when nothing has been booked.
type Dashboard struct {
	TotalVenues   int     `json:"total_venues"`
	TotalBookings int     `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
	TopVenue      *Ranked `json:"top_venue"`
	TopUser       *Ranked `json:"top_user"`
}

// Ranked names the leader of a ranking and its booking count.
type Ranked struct {
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
}

// GetDashboard handles GET /analytics/dashboard.
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.analytics.Dashboard(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, Dashboard{
		TotalVenues:   d.TotalVenues,
		TotalBookings: d.TotalBookings,
		TotalRevenue:  d.TotalRevenue,
		TopVenue:      rankedToResponse(d.TopVenue),
		TopUser:       rankedToResponse(d.TopUser),
	})
}

func rankedToResponse(r *domain.Ranked) *Ranked {
	if r == nil {
		return nil
	}
	return &Ranked{Name: r.Name, Bookings: r.Bookings}
}
