package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
	"github.com/pkordes/eazyvenue/backend/internal/repo"
)

func TestMemoryStore_VenueCreateGetList(t *testing.T) {
	store := repo.NewMemoryStore()
	venues := store.Venues()
	ctx := context.Background()

	first, err := venues.Create(ctx, venueFixture("Hall A"))
	require.NoError(t, err)
	second, err := venues.Create(ctx, venueFixture("Hall B"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	got, err := venues.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	all, err := venues.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Hall A", all[0].Name, "list keeps insertion order")
	assert.Equal(t, "Hall B", all[1].Name)
}

func TestMemoryStore_VenueGetByID_NotFound(t *testing.T) {
	_, err := repo.NewMemoryStore().Venues().GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStore_BookingLookups(t *testing.T) {
	store := repo.NewMemoryStore()
	ctx := context.Background()
	venue, err := store.Venues().Create(ctx, venueFixture("Hall A"))
	require.NoError(t, err)

	// A non-midnight instant is stored as its calendar date.
	created, err := store.Bookings().Create(ctx, bookingFixture(venue.ID, time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, day(2024, 6, 1), created.BookingDate)

	found, err := store.Bookings().FindByVenueAndDate(ctx, venue.ID, day(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = store.Bookings().FindByVenueAndDate(ctx, venue.ID, day(2024, 6, 2))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	byVenue, err := store.Bookings().ListByVenue(ctx, venue.ID)
	require.NoError(t, err)
	assert.Len(t, byVenue, 1)

	other, err := store.Bookings().ListByVenue(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryStore_BookingCreate_DuplicateIsConflict(t *testing.T) {
	store := repo.NewMemoryStore()
	ctx := context.Background()
	venue, err := store.Venues().Create(ctx, venueFixture("Hall A"))
	require.NoError(t, err)

	_, err = store.Bookings().Create(ctx, bookingFixture(venue.ID, day(2024, 6, 1)))
	require.NoError(t, err)
	_, err = store.Bookings().Create(ctx, bookingFixture(venue.ID, day(2024, 6, 1)))

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestMemoryStore_BookingCreate_UnknownVenue(t *testing.T) {
	_, err := repo.NewMemoryStore().Bookings().Create(context.Background(), bookingFixture(uuid.New(), day(2024, 6, 1)))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStore_BlockedDates(t *testing.T) {
	store := repo.NewMemoryStore()
	ctx := context.Background()
	venue, err := store.Venues().Create(ctx, venueFixture("Hall A"))
	require.NoError(t, err)

	block := domain.BlockedDate{VenueID: venue.ID, BlockedDate: day(2024, 6, 2), Reason: "maintenance"}
	created, err := store.BlockedDates().Create(ctx, block)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	found, err := store.BlockedDates().FindByVenueAndDate(ctx, venue.ID, day(2024, 6, 2))
	require.NoError(t, err)
	assert.Equal(t, "maintenance", found.Reason)

	_, err = store.BlockedDates().Create(ctx, block)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = store.BlockedDates().FindByVenueAndDate(ctx, venue.ID, day(2024, 6, 3))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := store.BlockedDates().ListByVenue(ctx, venue.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	store := repo.NewMemoryStore()
	ctx := context.Background()
	_, err := store.Venues().Create(ctx, venueFixture("Hall A"))
	require.NoError(t, err)

	list, err := store.Venues().List(ctx)
	require.NoError(t, err)
	list[0].Name = "mutated"

	again, err := store.Venues().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hall A", again[0].Name)
}
