package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
	"github.com/pkordes/eazyvenue/backend/internal/service"
)

func newAnalytics(venues []domain.Venue, bookings []domain.Booking) *service.AnalyticsService {
	return service.NewAnalyticsService(
		&mockVenueRepo{list: func(context.Context) ([]domain.Venue, error) { return venues, nil }},
		&mockBookingRepo{list: func(context.Context) ([]domain.Booking, error) { return bookings, nil }},
	)
}

func TestAnalyticsService_Dashboard_NoBookings(t *testing.T) {
	venues := []domain.Venue{{ID: uuid.New(), Name: "Hall A", PricePerDay: 500}}

	got, err := newAnalytics(venues, nil).Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalVenues)
	assert.Zero(t, got.TotalBookings)
	assert.Zero(t, got.TotalRevenue)
	assert.Nil(t, got.TopVenue)
	assert.Nil(t, got.TopUser)
}

func TestAnalyticsService_Dashboard_RevenueCountsEveryBooking(t *testing.T) {
	a := domain.Venue{ID: uuid.New(), Name: "Hall A", PricePerDay: 500}
	b := domain.Venue{ID: uuid.New(), Name: "Hall B", PricePerDay: 120.5}
	c := domain.Venue{ID: uuid.New(), Name: "Hall C", PricePerDay: 999}
	bookings := []domain.Booking{
		{VenueID: a.ID, UserName: "alice", BookingDate: day(2024, 6, 1)},
		{VenueID: b.ID, UserName: "bob", BookingDate: day(2024, 6, 1)},
		{VenueID: a.ID, UserName: "bob", BookingDate: day(2024, 6, 2)},
		{VenueID: a.ID, UserName: "carol", BookingDate: day(2024, 6, 3)},
	}

	got, err := newAnalytics([]domain.Venue{a, b, c}, bookings).Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalVenues)
	assert.Equal(t, 4, got.TotalBookings)
	assert.InDelta(t, 3*500+120.5, got.TotalRevenue, 1e-9)
	require.NotNil(t, got.TopVenue)
	assert.Equal(t, domain.Ranked{Name: "Hall A", Bookings: 3}, *got.TopVenue)
	require.NotNil(t, got.TopUser)
	assert.Equal(t, domain.Ranked{Name: "bob", Bookings: 2}, *got.TopUser)
}

func TestAnalyticsService_Dashboard_TiesGoToStoreOrder(t *testing.T) {
	a := domain.Venue{ID: uuid.New(), Name: "Hall A", PricePerDay: 1}
	b := domain.Venue{ID: uuid.New(), Name: "Hall B", PricePerDay: 1}
	bookings := []domain.Booking{
		{VenueID: b.ID, UserName: "zed"},
		{VenueID: a.ID, UserName: "amy"},
	}

	got, err := newAnalytics([]domain.Venue{a, b}, bookings).Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Hall A", got.TopVenue.Name, "first venue in store order wins a tie")
	assert.Equal(t, "zed", got.TopUser.Name, "first user to book wins a tie")
}

func TestAnalyticsService_Dashboard_OrphanBookingEarnsNothing(t *testing.T) {
	a := domain.Venue{ID: uuid.New(), Name: "Hall A", PricePerDay: 100}
	bookings := []domain.Booking{{VenueID: uuid.New(), UserName: "ghost"}}

	got, err := newAnalytics([]domain.Venue{a}, bookings).Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalBookings)
	assert.Zero(t, got.TotalRevenue)
	assert.Nil(t, got.TopVenue)
	require.NotNil(t, got.TopUser)
	assert.Equal(t, "ghost", got.TopUser.Name)
}
