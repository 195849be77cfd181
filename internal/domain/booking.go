package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

type Booking struct {
	ID          string        `json:"id"`
	TurfID      string        `json:"turf_id"`
	UserID      string        `json:"user_id"`
	UserName    string        `json:"user_name"`
	UserEmail   string        `json:"user_email"`
	UserPhone   string        `json:"user_phone,omitempty"`
	Status      BookingStatus `json:"status"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	TotalAmount int64         `json:"total_amount"`
	CheckedInAt *time.Time    `json:"checked_in_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
