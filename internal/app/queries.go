package app

import (
	"context"
	"time"

	"danube_tours/internal/domain"
)

const (
	toursCacheKey    = "tours:all"
	settingsCacheKey = "settings"
)

// QueryService serves the public read path: read-through cache in front
// of the table store, one entry for the full tour list and one for the
// site settings. Individual tours resolve from the cached list rather
// than their own key, the catalog is small.
type QueryService struct {
	store    domain.Store
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(store domain.Store, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: store, cache: cache, cacheTTL: ttl}
}

func (s *QueryService) ListTours(ctx context.Context) ([]domain.Tour, error) {
	var tours []domain.Tour
	if ok, _ := s.cache.Get(ctx, toursCacheKey, &tours); ok {
		return tours, nil
	}
	tours, err := s.store.ListTours(ctx)
	if err != nil {
		return nil, err
	}

	// copy slice to avoid aliasing the store's backing array
	cp := make([]domain.Tour, len(tours))
	copy(cp, tours)
	_ = s.cache.Set(ctx, toursCacheKey, cp, int(s.cacheTTL.Seconds()))
	return cp, nil
}

func (s *QueryService) GetTour(ctx context.Context, id string) (domain.Tour, error) {
	tours, err := s.ListTours(ctx)
	if err != nil {
		return domain.Tour{}, err
	}
	for _, t := range tours {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Tour{}, domain.ErrNotFound
}

func (s *QueryService) GetSettings(ctx context.Context) (domain.SiteSettings, error) {
	var st domain.SiteSettings
	if ok, _ := s.cache.Get(ctx, settingsCacheKey, &st); ok {
		return st, nil
	}
	st, err := s.store.GetSettings(ctx)
	if err != nil {
		return domain.SiteSettings{}, err
	}
	_ = s.cache.Set(ctx, settingsCacheKey, st, int(s.cacheTTL.Seconds()))
	return st, nil
}
