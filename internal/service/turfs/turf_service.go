package turfs

import (
	"context"

	"github.com/Domenick1991/turfbooking/internal/domain"
	"github.com/Domenick1991/turfbooking/internal/repository"
	"github.com/Domenick1991/turfbooking/internal/service/moderation"
)

type TurfUseCase interface {
	List(ctx context.Context) ([]domain.Turf, error)
	GetByID(ctx context.Context, id string) (*domain.Turf, error)
}

type TurfService struct {
	repo  repository.TurfRepository
	cache moderation.Cache
}

func NewTurfService(repo repository.TurfRepository, cache moderation.Cache) *TurfService {
	return &TurfService{repo: repo, cache: cache}
}

// List returns only publicly visible turfs (verified and active). The listing is cached
// with a TTL; moderation outcomes invalidate it eagerly.
func (s *TurfService) List(ctx context.Context) ([]domain.Turf, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetVisibleTurfs(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	turfs, err := s.repo.ListVisible(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetVisibleTurfs(ctx, turfs)
	}
	return turfs, nil
}

// GetByID serves the public detail page, so turfs that are unverified or deactivated
// are reported as not found.
func (s *TurfService) GetByID(ctx context.Context, id string) (*domain.Turf, error) {
	turf, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !turf.Visible() {
		return nil, domain.ErrTurfNotFound
	}
	return turf, nil
}

var _ TurfUseCase = (*TurfService)(nil)
