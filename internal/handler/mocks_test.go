package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
	"github.com/pkordes/eazyvenue/backend/internal/handler"
)

// mockVenueServicer is a test double for handler.VenueServicer.
// Set only the method fields your test needs.
type mockVenueServicer struct {
	create       func(ctx context.Context, v domain.Venue) (domain.Venue, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Venue, error)
	list         func(ctx context.Context) ([]domain.Venue, error)
	availability func(ctx context.Context, id uuid.UUID) (domain.Availability, error)
}

func (m *mockVenueServicer) Create(ctx context.Context, v domain.Venue) (domain.Venue, error) {
	return m.create(ctx, v)
}
func (m *mockVenueServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Venue, error) {
	return m.getByID(ctx, id)
}
func (m *mockVenueServicer) List(ctx context.Context) ([]domain.Venue, error) {
	return m.list(ctx)
}
func (m *mockVenueServicer) Availability(ctx context.Context, id uuid.UUID) (domain.Availability, error) {
	return m.availability(ctx, id)
}

// mockBookingServicer is a test double for handler.BookingServicer.
type mockBookingServicer struct {
	book               func(ctx context.Context, b domain.Booking) (domain.Booking, error)
	blockDate          func(ctx context.Context, b domain.BlockedDate) (domain.BlockedDate, error)
	list               func(ctx context.Context) ([]domain.Booking, error)
	listByVenue        func(ctx context.Context, id uuid.UUID) ([]domain.Booking, error)
	listBlockedByVenue func(ctx context.Context, id uuid.UUID) ([]domain.BlockedDate, error)
}

func (m *mockBookingServicer) Book(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	return m.book(ctx, b)
}
func (m *mockBookingServicer) BlockDate(ctx context.Context, b domain.BlockedDate) (domain.BlockedDate, error) {
	return m.blockDate(ctx, b)
}
func (m *mockBookingServicer) List(ctx context.Context) ([]domain.Booking, error) {
	return m.list(ctx)
}
func (m *mockBookingServicer) ListByVenue(ctx context.Context, id uuid.UUID) ([]domain.Booking, error) {
	return m.listByVenue(ctx, id)
}
func (m *mockBookingServicer) ListBlockedByVenue(ctx context.Context, id uuid.UUID) ([]domain.BlockedDate, error) {
	return m.listBlockedByVenue(ctx, id)
}

// mockAnalyticsServicer is a test double for handler.AnalyticsServicer.
type mockAnalyticsServicer struct {
	dashboard func(ctx context.Context) (domain.Dashboard, error)
}

func (m *mockAnalyticsServicer) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	return m.dashboard(ctx)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.VenueServicer     = (*mockVenueServicer)(nil)
	_ handler.BookingServicer   = (*mockBookingServicer)(nil)
	_ handler.AnalyticsServicer = (*mockAnalyticsServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// serve sends req through the Server's router, the same one main.go mounts.
func serve(srv *handler.Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func postJSON(t *testing.T, path string, v any) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, jsonBody(t, v))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func venueFixture() domain.Venue {
	return domain.Venue{
		ID:          uuid.New(),
		Name:        "Hall A",
		Location:    "Pune",
		Capacity:    100,
		PricePerDay: 500,
		CreatedAt:   time.Now().UTC(),
	}
}
