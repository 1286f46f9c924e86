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

// BookingRepo defines the persistence operations for Bookings.
// It enforces no business rules beyond the (venue_id, booking_date) unique index.
type BookingRepo interface {
	// Create inserts a new booking and returns the persisted record.
	// Returns domain.ErrConflict if the venue is already booked on that date
	// and domain.ErrNotFound if the venue does not exist.
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)

	// List returns every booking in insertion order.
	List(ctx context.Context) ([]domain.Booking, error)

	// ListByVenue returns all bookings for a venue in insertion order.
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.Booking, error)

	// FindByVenueAndDate returns the booking for venueID on the calendar date
	// of date. Returns domain.ErrNotFound when the date is not booked.
	FindByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) (domain.Booking, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const bookingColumns = `id, venue_id, booking_date, user_name, user_email, status, created_at`

// Create inserts a new booking row and returns the full persisted record.
func (r *pgBookingRepo) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings (venue_id, booking_date, user_name, user_email, status)
		VALUES (@venue_id, @booking_date, @user_name, @user_email, @status)
		RETURNING ` + bookingColumns

	args := pgx.NamedArgs{
		"venue_id":     booking.VenueID,
		"booking_date": domain.CalendarDate(booking.BookingDate),
		"user_name":    booking.UserName,
		"user_email":   booking.UserEmail,
		"status":       booking.Status,
	}

	result, err := scanBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", translateWriteErr(err))
	}
	return result, nil
}

// List returns every booking, oldest first.
func (r *pgBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.List: %w", err)
	}
	bookings, err := collect(rows, scanBooking)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.List: %w", err)
	}
	return bookings, nil
}

// ListByVenue returns all bookings for one venue, oldest first.
func (r *pgBookingRepo) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE venue_id = @venue_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"venue_id": venueID})
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListByVenue: %w", err)
	}
	bookings, err := collect(rows, scanBooking)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListByVenue: %w", err)
	}
	return bookings, nil
}

// FindByVenueAndDate looks up the booking for a venue on one calendar date.
func (r *pgBookingRepo) FindByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) (domain.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE venue_id = @venue_id AND booking_date = @booking_date`

	args := pgx.NamedArgs{"venue_id": venueID, "booking_date": domain.CalendarDate(date)}
	result, err := scanBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.FindByVenueAndDate: %w", err)
	}
	return result, nil
}

// scanBooking maps a single database row into a domain.Booking.
func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b       domain.Booking
		id      pgtype.UUID
		venueID pgtype.UUID
		date    pgtype.Date
	)

	err := s.Scan(&id, &venueID, &date, &b.UserName, &b.UserEmail, &b.Status, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.VenueID = uuid.UUID(venueID.Bytes)
	b.BookingDate = domain.CalendarDate(date.Time)
	return b, nil
}
