package checkin

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/turfbooking/internal/domain"
	"github.com/Domenick1991/turfbooking/internal/kafka"
	"github.com/Domenick1991/turfbooking/internal/repository"
	"github.com/google/uuid"
)

type CheckInUseCase interface {
	VerifyOwnership(ctx context.Context, scanned *domain.Booking, callerOwnerID string) (*domain.Booking, error)
	CheckIn(ctx context.Context, bookingID string) (*domain.Booking, error)
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

// publishRetries bounds the best-effort delivery attempts for check-in events.
const publishRetries = 3

type CheckInService struct {
	bookings           repository.BookingRepository
	turfs              repository.TurfRepository
	producer           Producer
	notificationsTopic string
}

func NewCheckInService(bookings repository.BookingRepository, turfs repository.TurfRepository, producer Producer, notificationsTopic string) *CheckInService {
	return &CheckInService{
		bookings:           bookings,
		turfs:              turfs,
		producer:           producer,
		notificationsTopic: notificationsTopic,
	}
}

// VerifyOwnership checks that the scanned booking belongs to a turf owned by the
// caller. Ownership is derived from the freshly loaded turf record only; the scanned
// payload is trusted for its identifiers, not for authorization. No state changes.
func (s *CheckInService) VerifyOwnership(ctx context.Context, scanned *domain.Booking, callerOwnerID string) (*domain.Booking, error) {
	if scanned == nil || scanned.ID == "" || scanned.TurfID == "" {
		return nil, fmt.Errorf("%w: scanned booking is missing identifiers", domain.ErrValidation)
	}

	turf, err := s.turfs.GetByID(ctx, scanned.TurfID)
	if err != nil {
		return nil, err
	}
	if turf.OwnerID != callerOwnerID {
		return nil, domain.ErrUnauthorized
	}
	return scanned, nil
}

// CheckIn finalizes a booking on-site. Checking in a booking that is already completed
// is a no-op success: the second scan returns the stored record and keeps the original
// checked_in_at.
func (s *CheckInService) CheckIn(ctx context.Context, bookingID string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCompleted {
		return current, nil
	}

	updated, err := s.bookings.MarkCompleted(ctx, bookingID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.notifyUser(ctx, updated)
	return updated, nil
}

func (s *CheckInService) notifyUser(ctx context.Context, booking *domain.Booking) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}

	event := kafka.NotificationEvent{
		EventID: uuid.NewString(),
		Type:    kafka.EventBookingCheckedIn,
		UserID:  booking.UserID,
		Title:   "Checked in",
		Body:    fmt.Sprintf("Enjoy your game, %s! Your booking is checked in.", booking.UserName),
		Data: map[string]string{
			"booking_id": booking.ID,
			"turf_id":    booking.TurfID,
		},
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.PublishWithRetry(ctx, s.notificationsTopic, booking.UserID, event, publishRetries); err != nil {
		log.Printf("WARNING: failed to publish check-in event for booking %s: %v", booking.ID, err)
	}
}

var _ CheckInUseCase = (*CheckInService)(nil)
