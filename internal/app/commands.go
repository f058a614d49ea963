package app

import (
	"context"
	"fmt"

	"danube_tours/internal/domain"
)

// AdminService is the authenticated write path. Every mutation runs
// under the caller's session and evicts the read cache it invalidates;
// the next public read repopulates it.
type AdminService struct {
	store domain.Store
	cache domain.Cache
}

func NewAdminService(store domain.Store, cache domain.Cache) *AdminService {
	return &AdminService{store: store, cache: cache}
}

func (s *AdminService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	return s.store.SignIn(ctx, email, password)
}

func (s *AdminService) Logout(ctx context.Context, sess domain.Session) error {
	return s.store.SignOut(ctx, sess)
}

func (s *AdminService) Inquiries(ctx context.Context, sess domain.Session) ([]domain.Inquiry, error) {
	return s.store.ListInquiries(ctx, sess)
}

func (s *AdminService) LogEntries(ctx context.Context, sess domain.Session) ([]domain.LogEntry, error) {
	return s.store.ListLogEntries(ctx, sess)
}

func (s *AdminService) UpdateInquiryStatus(ctx context.Context, sess domain.Session, id string, status domain.InquiryStatus) (domain.Inquiry, error) {
	if !status.Valid() {
		return domain.Inquiry{}, fmt.Errorf("invalid inquiry status %q", status)
	}
	return s.store.UpdateInquiryStatus(ctx, sess, id, status)
}

func (s *AdminService) AddTour(ctx context.Context, sess domain.Session, t domain.Tour) (domain.Tour, error) {
	created, err := s.store.AddTour(ctx, sess, t)
	if err != nil {
		return domain.Tour{}, err
	}
	s.invalidateTours(ctx)
	return created, nil
}

func (s *AdminService) UpdateTour(ctx context.Context, sess domain.Session, t domain.Tour) (domain.Tour, error) {
	updated, err := s.store.UpdateTour(ctx, sess, t)
	if err != nil {
		return domain.Tour{}, err
	}
	s.invalidateTours(ctx)
	return updated, nil
}

func (s *AdminService) DeleteTour(ctx context.Context, sess domain.Session, id string) error {
	if err := s.store.DeleteTour(ctx, sess, id); err != nil {
		return err
	}
	s.invalidateTours(ctx)
	return nil
}

func (s *AdminService) UpdateSettings(ctx context.Context, sess domain.Session, st domain.SiteSettings) (domain.SiteSettings, error) {
	updated, err := s.store.UpdateSettings(ctx, sess, st)
	if err != nil {
		return domain.SiteSettings{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, settingsCacheKey)
	}
	return updated, nil
}

func (s *AdminService) invalidateTours(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, toursCacheKey)
	}
}
