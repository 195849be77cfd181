package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/turfbooking/internal/domain"
	"github.com/jackc/pgx/v5"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	MarkCompleted(ctx context.Context, id string, checkedInAt time.Time) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, turf_id, user_id, user_name, user_email, coalesce(user_phone, ''),
	status, start_time, end_time, total_amount, checked_in_at, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.TurfID, &b.UserID, &b.UserName, &b.UserEmail, &b.UserPhone,
		&b.Status, &b.StartTime, &b.EndTime, &b.TotalAmount, &b.CheckedInAt, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w: %w", domain.ErrStore, err)
	}
	return b, nil
}

func (r *PGBookingRepository) MarkCompleted(ctx context.Context, id string, checkedInAt time.Time) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings
		SET status=$2, checked_in_at=$3, updated_at=now()
		WHERE id=$1
		RETURNING `+bookingColumns, id, domain.BookingStatusCompleted, checkedInAt)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("mark booking completed: %w: %w", domain.ErrStore, err)
	}
	return b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
