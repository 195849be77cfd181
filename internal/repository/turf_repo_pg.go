package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/turfbooking/internal/domain"
	"github.com/jackc/pgx/v5"
)

type TurfRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Turf, error)
	ListVisible(ctx context.Context) ([]domain.Turf, error)
	ListUnverified(ctx context.Context) ([]domain.Turf, error)
	MarkVerified(ctx context.Context, id string, verifiedAt time.Time) (*domain.Turf, error)
	MarkRejected(ctx context.Context, id string, reason string) (*domain.Turf, error)
}

type PGTurfRepository struct {
	db DB
}

func NewTurfRepository(db DB) TurfRepository {
	return &PGTurfRepository{db: db}
}

// Arrays are coalesced to '{}' so records written without images or amenities
// come back as empty slices instead of nils.
const turfColumns = `id, owner_id, name, location, description, price_per_hour,
	coalesce(images, '{}'), coalesce(amenities, '{}'),
	is_verified, is_active, rejection_reason, verified_at, created_at, updated_at`

func scanTurf(row pgx.Row) (*domain.Turf, error) {
	var t domain.Turf
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Location, &t.Description, &t.PricePerHour,
		&t.Images, &t.Amenities,
		&t.IsVerified, &t.IsActive, &t.RejectionReason, &t.VerifiedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PGTurfRepository) GetByID(ctx context.Context, id string) (*domain.Turf, error) {
	row := r.db.QueryRow(ctx, `SELECT `+turfColumns+` FROM turfs WHERE id=$1`, id)
	t, err := scanTurf(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTurfNotFound
		}
		return nil, fmt.Errorf("get turf: %w: %w", domain.ErrStore, err)
	}
	return t, nil
}

func (r *PGTurfRepository) ListVisible(ctx context.Context) ([]domain.Turf, error) {
	return r.list(ctx, `SELECT `+turfColumns+` FROM turfs WHERE is_verified AND is_active ORDER BY created_at DESC`)
}

func (r *PGTurfRepository) ListUnverified(ctx context.Context) ([]domain.Turf, error) {
	return r.list(ctx, `SELECT `+turfColumns+` FROM turfs WHERE NOT is_verified ORDER BY created_at DESC`)
}

func (r *PGTurfRepository) list(ctx context.Context, query string) ([]domain.Turf, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list turfs: %w: %w", domain.ErrStore, err)
	}
	defer rows.Close()

	turfs := make([]domain.Turf, 0)
	for rows.Next() {
		t, err := scanTurf(rows)
		if err != nil {
			return nil, fmt.Errorf("scan turf: %w: %w", domain.ErrStore, err)
		}
		turfs = append(turfs, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list turfs: %w: %w", domain.ErrStore, err)
	}
	return turfs, nil
}

func (r *PGTurfRepository) MarkVerified(ctx context.Context, id string, verifiedAt time.Time) (*domain.Turf, error) {
	row := r.db.QueryRow(ctx, `UPDATE turfs
		SET is_verified=true, is_active=true, rejection_reason=NULL, verified_at=$2, updated_at=now()
		WHERE id=$1
		RETURNING `+turfColumns, id, verifiedAt)
	t, err := scanTurf(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTurfNotFound
		}
		return nil, fmt.Errorf("mark turf verified: %w: %w", domain.ErrStore, err)
	}
	return t, nil
}

func (r *PGTurfRepository) MarkRejected(ctx context.Context, id string, reason string) (*domain.Turf, error) {
	row := r.db.QueryRow(ctx, `UPDATE turfs
		SET is_verified=false, is_active=false, rejection_reason=$2, updated_at=now()
		WHERE id=$1
		RETURNING `+turfColumns, id, reason)
	t, err := scanTurf(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTurfNotFound
		}
		return nil, fmt.Errorf("mark turf rejected: %w: %w", domain.ErrStore, err)
	}
	return t, nil
}

var _ TurfRepository = (*PGTurfRepository)(nil)
