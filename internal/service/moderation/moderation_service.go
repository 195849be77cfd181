package moderation

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/turfbooking/internal/domain"
	"github.com/Domenick1991/turfbooking/internal/kafka"
	"github.com/Domenick1991/turfbooking/internal/repository"
	"github.com/google/uuid"
)

type ModerationUseCase interface {
	ListPending(ctx context.Context) ([]domain.Turf, error)
	Approve(ctx context.Context, turfID string) (*domain.Turf, error)
	Reject(ctx context.Context, turfID, reason string) (*domain.Turf, error)
}

type Cache interface {
	GetVisibleTurfs(ctx context.Context) ([]domain.Turf, error)
	SetVisibleTurfs(ctx context.Context, turfs []domain.Turf) error
	InvalidateVisibleTurfs(ctx context.Context) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

// publishRetries bounds the best-effort delivery attempts for outcome events.
const publishRetries = 3

type ModerationService struct {
	turfs              repository.TurfRepository
	cache              Cache
	producer           Producer
	notificationsTopic string
}

func NewModerationService(turfs repository.TurfRepository, cache Cache, producer Producer, notificationsTopic string) *ModerationService {
	return &ModerationService{
		turfs:              turfs,
		cache:              cache,
		producer:           producer,
		notificationsTopic: notificationsTopic,
	}
}

func (s *ModerationService) ListPending(ctx context.Context) ([]domain.Turf, error) {
	return s.turfs.ListUnverified(ctx)
}

// Approve drives the turf to the verified state regardless of its current one, so a
// previously rejected turf can be approved directly. Concurrent approve/reject calls on
// the same turf resolve last-write-wins at the store; there is no version check.
func (s *ModerationService) Approve(ctx context.Context, turfID string) (*domain.Turf, error) {
	if _, err := s.turfs.GetByID(ctx, turfID); err != nil {
		return nil, err
	}

	turf, err := s.turfs.MarkVerified(ctx, turfID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	s.notifyOwner(ctx, turf, kafka.EventTurfApproved, "Turf approved",
		fmt.Sprintf("Your turf %q is now live and open for bookings.", turf.Name), nil)
	return turf, nil
}

func (s *ModerationService) Reject(ctx context.Context, turfID, reason string) (*domain.Turf, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}

	if _, err := s.turfs.GetByID(ctx, turfID); err != nil {
		return nil, err
	}

	turf, err := s.turfs.MarkRejected(ctx, turfID, reason)
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	s.notifyOwner(ctx, turf, kafka.EventTurfRejected, "Turf rejected",
		fmt.Sprintf("Your turf %q was rejected: %s", turf.Name, reason),
		map[string]string{"reason": reason})
	return turf, nil
}

func (s *ModerationService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateVisibleTurfs(ctx); err != nil {
		log.Printf("WARNING: failed to invalidate turf listing cache: %v", err)
	}
}

// notifyOwner is fire-and-forget: a moderation outcome never fails because the
// notification could not be published.
func (s *ModerationService) notifyOwner(ctx context.Context, turf *domain.Turf, eventType, title, body string, data map[string]string) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	if data == nil {
		data = map[string]string{}
	}
	data["turf_id"] = turf.ID

	event := kafka.NotificationEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     turf.OwnerID,
		Title:      title,
		Body:       body,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.PublishWithRetry(ctx, s.notificationsTopic, turf.OwnerID, event, publishRetries); err != nil {
		log.Printf("WARNING: failed to publish %s event for turf %s: %v", eventType, turf.ID, err)
	}
}

var _ ModerationUseCase = (*ModerationService)(nil)
