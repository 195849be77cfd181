package domain

import "time"

type Turf struct {
	ID              string
	OwnerID         string
	Name            string
	Location        string
	Description     string
	PricePerHour    int64
	Images          []string
	Amenities       []string
	IsVerified      bool
	IsActive        bool
	RejectionReason *string
	VerifiedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Visible reports whether the turf may appear in public listings.
func (t *Turf) Visible() bool {
	return t.IsVerified && t.IsActive
}
