package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
)

// VenueRepo defines the persistence operations for Venues.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type VenueRepo interface {
	// Create inserts a new venue and returns the persisted record (with
	// store-generated id and created_at populated).
	Create(ctx context.Context, venue domain.Venue) (domain.Venue, error)

	// GetByID retrieves a single venue by its UUID primary key.
	// Returns domain.ErrNotFound if no venue with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Venue, error)

	// List returns all venues in insertion order.
	List(ctx context.Context) ([]domain.Venue, error)
}

// pgVenueRepo is the Postgres implementation of VenueRepo.
type pgVenueRepo struct {
	db db
}

// NewVenueRepo constructs a VenueRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVenueRepo(db db) VenueRepo {
	return &pgVenueRepo{db: db}
}

const venueColumns = `id, name, location, capacity, price_per_day, description, amenities, created_at`

// Create inserts a new venue row and returns the full persisted record.
func (r *pgVenueRepo) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	const q = `
		INSERT INTO venues (name, location, capacity, price_per_day, description, amenities)
		VALUES (@name, @location, @capacity, @price_per_day, @description, @amenities)
		RETURNING ` + venueColumns

	args := pgx.NamedArgs{
		"name":          venue.Name,
		"location":      venue.Location,
		"capacity":      venue.Capacity,
		"price_per_day": venue.PricePerDay,
		"description":   venue.Description,
		"amenities":     venue.Amenities,
	}

	result, err := scanVenue(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a venue by primary key.
func (r *pgVenueRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = @id`

	result, err := scanVenue(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all venues, oldest first.
func (r *pgVenueRepo) List(ctx context.Context) ([]domain.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.List: %w", err)
	}
	venues, err := collect(rows, scanVenue)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.List: %w", err)
	}
	return venues, nil
}

// scanVenue maps a single database row into a domain.Venue.
func scanVenue(s scanner) (domain.Venue, error) {
	var (
		v  domain.Venue
		id pgtype.UUID
	)

	err := s.Scan(&id, &v.Name, &v.Location, &v.Capacity, &v.PricePerDay,
		&v.Description, &v.Amenities, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Venue{}, domain.ErrNotFound
		}
		return domain.Venue{}, err
	}

	v.ID = uuid.UUID(id.Bytes)
	return v, nil
}
