package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
)

// BlockedDateRepo defines the persistence operations for BlockedDates.
type BlockedDateRepo interface {
	// Create inserts a new blocked date and returns the persisted record.
	// Returns domain.ErrConflict if the date is already blocked for the venue
	// and domain.ErrNotFound if the venue does not exist.
	Create(ctx context.Context, block domain.BlockedDate) (domain.BlockedDate, error)

	// ListByVenue returns all blocked dates for a venue in insertion order.
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.BlockedDate, error)

	// FindByVenueAndDate returns the block for venueID on the calendar date of
	// date. Returns domain.ErrNotFound when the date is not blocked.
	FindByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) (domain.BlockedDate, error)
}

// pgBlockedDateRepo is the Postgres implementation of BlockedDateRepo.
type pgBlockedDateRepo struct {
	db db
}

// NewBlockedDateRepo constructs a BlockedDateRepo backed by the provided db connection.
func NewBlockedDateRepo(db db) BlockedDateRepo {
	return &pgBlockedDateRepo{db: db}
}

const blockedDateColumns = `id, venue_id, blocked_date, reason, created_at`

func (r *pgBlockedDateRepo) Create(ctx context.Context, block domain.BlockedDate) (domain.BlockedDate, error) {
	const q = `
		INSERT INTO blocked_dates (venue_id, blocked_date, reason)
		VALUES (@venue_id, @blocked_date, @reason)
		RETURNING ` + blockedDateColumns

	args := pgx.NamedArgs{
		"venue_id":     block.VenueID,
		"blocked_date": domain.CalendarDate(block.BlockedDate),
		"reason":       block.Reason,
	}

	result, err := scanBlockedDate(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.BlockedDate{}, fmt.Errorf("repo.BlockedDateRepo.Create: %w", translateWriteErr(err))
	}
	return result, nil
}

func (r *pgBlockedDateRepo) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.BlockedDate, error) {
	const q = `
		SELECT ` + blockedDateColumns + `
		FROM blocked_dates
		WHERE venue_id = @venue_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"venue_id": venueID})
	if err != nil {
		return nil, fmt.Errorf("repo.BlockedDateRepo.ListByVenue: %w", err)
	}
	blocks, err := collect(rows, scanBlockedDate)
	if err != nil {
		return nil, fmt.Errorf("repo.BlockedDateRepo.ListByVenue: %w", err)
	}
	return blocks, nil
}

func (r *pgBlockedDateRepo) FindByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) (domain.BlockedDate, error) {
	const q = `
		SELECT ` + blockedDateColumns + `
		FROM blocked_dates
		WHERE venue_id = @venue_id AND blocked_date = @blocked_date`

	args := pgx.NamedArgs{"venue_id": venueID, "blocked_date": domain.CalendarDate(date)}
	result, err := scanBlockedDate(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.BlockedDate{}, fmt.Errorf("repo.BlockedDateRepo.FindByVenueAndDate: %w", err)
	}
	return result, nil
}

func scanBlockedDate(s scanner) (domain.BlockedDate, error) {
	var (
		b       domain.BlockedDate
		id      pgtype.UUID
		venueID pgtype.UUID
		date    pgtype.Date
	)

	if err := s.Scan(&id, &venueID, &date, &b.Reason, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BlockedDate{}, domain.ErrNotFound
		}
		return domain.BlockedDate{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.VenueID = uuid.UUID(venueID.Bytes)
	b.BlockedDate = domain.CalendarDate(date.Time)
	return b, nil
}
