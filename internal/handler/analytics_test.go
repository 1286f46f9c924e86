package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
	"github.com/pkordes/eazyvenue/backend/internal/handler"
)

func TestGetDashboard_200(t *testing.T) {
	svc := &mockAnalyticsServicer{
		dashboard: func(_ context.Context) (domain.Dashboard, error) {
			return domain.Dashboard{
				TotalVenues:   2,
				TotalBookings: 3,
				TotalRevenue:  1500,
				TopVenue:      &domain.Ranked{Name: "Hall A", Bookings: 2},
				TopUser:       &domain.Ranked{Name: "Asha", Bookings: 2},
			}, nil
		},
	}

	rec := serve(handler.NewServer(nil, nil, svc), httptest.NewRequest(http.MethodGet, "/analytics/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total_venues": 2,
		"total_bookings": 3,
		"total_revenue": 1500,
		"top_venue": {"name": "Hall A", "bookings": 2},
		"top_user": {"name": "Asha", "bookings": 2}
	}`, rec.Body.String())
}

func TestGetDashboard_NoBookings_NullLeaders(t *testing.T) {
	svc := &mockAnalyticsServicer{
		dashboard: func(_ context.Context) (domain.Dashboard, error) {
			return domain.Dashboard{TotalVenues: 1}, nil
		},
	}

	rec := serve(handler.NewServer(nil, nil, svc), httptest.NewRequest(http.MethodGet, "/analytics/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total_venues": 1,
		"total_bookings": 0,
		"total_revenue": 0,
		"top_venue": null,
		"top_user": null
	}`, rec.Body.String())
}

func TestGetDashboard_500(t *testing.T) {
	svc := &mockAnalyticsServicer{
		dashboard: func(_ context.Context) (domain.Dashboard, error) { return domain.Dashboard{}, errors.New("boom") },
	}

	rec := serve(handler.NewServer(nil, nil, svc), httptest.NewRequest(http.MethodGet, "/analytics/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
