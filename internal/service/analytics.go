package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
	"github.com/pkordes/eazyvenue/backend/internal/repo"
)

// AnalyticsService computes dashboard statistics. Nothing is cached; every
// call reads the store afresh.
type AnalyticsService struct {
	venues   repo.VenueRepo
	bookings repo.BookingRepo
}

// NewAnalyticsService constructs an AnalyticsService backed by the provided repos.
func NewAnalyticsService(venues repo.VenueRepo, bookings repo.BookingRepo) *AnalyticsService {
	return &AnalyticsService{venues: venues, bookings: bookings}
}

// Dashboard returns totals and the top venue and user by booking count.
//
// TotalRevenue adds the venue's price_per_day once per booking, so a venue
// booked N times contributes N × price_per_day. Bookings whose venue is not
// on record contribute nothing. Ties for top venue go to the venue listed
// first; ties for top user go to the name that booked first.
func (s *AnalyticsService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	venues, err := s.venues.List(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("service.AnalyticsService.Dashboard: %w", err)
	}
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("service.AnalyticsService.Dashboard: %w", err)
	}

	price := make(map[uuid.UUID]float64, len(venues))
	for _, v := range venues {
		price[v.ID] = v.PricePerDay
	}

	var (
		perVenue  = make(map[uuid.UUID]int)
		perUser   = make(map[string]int)
		userOrder []string
		revenue   float64
	)
	for _, b := range bookings {
		if p, ok := price[b.VenueID]; ok {
			revenue += p
			perVenue[b.VenueID]++
		}
		if _, seen := perUser[b.UserName]; !seen {
			userOrder = append(userOrder, b.UserName)
		}
		perUser[b.UserName]++
	}

	d := domain.Dashboard{
		TotalVenues:   len(venues),
		TotalBookings: len(bookings),
		TotalRevenue:  revenue,
	}
	for _, v := range venues {
		if n := perVenue[v.ID]; n > 0 && (d.TopVenue == nil || n > d.TopVenue.Bookings) {
			d.TopVenue = &domain.Ranked{Name: v.Name, Bookings: n}
		}
	}
	for _, name := range userOrder {
		if n := perUser[name]; d.TopUser == nil || n > d.TopUser.Bookings {
			d.TopUser = &domain.Ranked{Name: name, Bookings: n}
		}
	}
	return d, nil
}
