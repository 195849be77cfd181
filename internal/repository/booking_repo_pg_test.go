package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/turfbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingColumnNames = []string{
	"id", "turf_id", "user_id", "user_name", "user_email", "user_phone",
	"status", "start_time", "end_time", "total_amount", "checked_in_at",
	"created_at", "updated_at",
}

func TestNewBookingRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewBookingRepository(pool)
	assert.NotNil(t, repo)
}

func TestPGBookingRepository_GetByID_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery(`FROM bookings WHERE id=\$1`).WithArgs("missing").WillReturnError(pgx.ErrNoRows)

	repo := NewBookingRepository(mockPool)
	booking, err := repo.GetByID(context.Background(), "missing")

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPGBookingRepository_GetByID_StoreError(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery(`FROM bookings WHERE id=\$1`).WithArgs("b1").WillReturnError(errors.New("connection refused"))

	repo := NewBookingRepository(mockPool)
	booking, err := repo.GetByID(context.Background(), "b1")

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestPGBookingRepository_MarkCompleted(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	now := time.Now().UTC()
	checkedInAt := now
	rows := pgxmock.NewRows(bookingColumnNames).
		AddRow("b1", "t1", "u1", "Sam", "sam@example.com", "",
			domain.BookingStatusCompleted, now.Add(time.Hour), now.Add(2*time.Hour), int64(2000), &checkedInAt, now, now)

	mockPool.ExpectQuery(`(?s)UPDATE bookings.+SET status=\$2, checked_in_at=\$3.+WHERE id=\$1`).
		WithArgs("b1", domain.BookingStatusCompleted, checkedInAt).WillReturnRows(rows)

	repo := NewBookingRepository(mockPool)
	booking, err := repo.MarkCompleted(context.Background(), "b1", checkedInAt)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, booking.Status)
	if assert.NotNil(t, booking.CheckedInAt) {
		assert.Equal(t, checkedInAt, *booking.CheckedInAt)
	}
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPGBookingRepository_MarkCompleted_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery(`(?s)UPDATE bookings.+WHERE id=\$1`).
		WithArgs("missing", domain.BookingStatusCompleted, pgxmock.AnyArg()).WillReturnError(pgx.ErrNoRows)

	repo := NewBookingRepository(mockPool)
	booking, err := repo.MarkCompleted(context.Background(), "missing", time.Now().UTC())

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
