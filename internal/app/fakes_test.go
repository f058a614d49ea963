package app_test

import (
	"context"
	"errors"
	"sync"

	"danube_tours/internal/domain"
)

// ---- fakes ----

type fakeStore struct {
	mu    sync.Mutex
	tours []domain.Tour
	st    domain.SiteSettings

	inquiries []domain.InquiryDraft
	entries   []domain.LogEntry

	listErr error
	addErr  error

	session domain.Session
	signIns int
}

func (f *fakeStore) ListTours(ctx context.Context) ([]domain.Tour, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tours, nil
}

func (f *fakeStore) GetSettings(ctx context.Context) (domain.SiteSettings, error) {
	return f.st, nil
}

func (f *fakeStore) AddInquiry(ctx context.Context, d domain.InquiryDraft) (domain.Inquiry, error) {
	if f.addErr != nil {
		return domain.Inquiry{}, f.addErr
	}
	f.mu.Lock()
	f.inquiries = append(f.inquiries, d)
	f.mu.Unlock()
	return domain.Inquiry{ID: "inq-1", Email: d.Email, Status: domain.StatusNew}, nil
}

func (f *fakeStore) AddLogEntry(ctx context.Context, e domain.LogEntry) (domain.LogEntry, error) {
	if f.addErr != nil {
		return domain.LogEntry{}, f.addErr
	}
	f.mu.Lock()
	f.entries = append(f.entries, e)
	f.mu.Unlock()
	e.ID = "log-1"
	return e, nil
}

func (f *fakeStore) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	f.signIns++
	if f.session.AccessToken == "" {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return f.session, nil
}

func (f *fakeStore) SignOut(ctx context.Context, s domain.Session) error { return nil }

func (f *fakeStore) ListInquiries(ctx context.Context, s domain.Session) ([]domain.Inquiry, error) {
	return nil, nil
}

func (f *fakeStore) ListLogEntries(ctx context.Context, s domain.Session) ([]domain.LogEntry, error) {
	return f.entries, nil
}

func (f *fakeStore) UpdateInquiryStatus(ctx context.Context, s domain.Session, id string, status domain.InquiryStatus) (domain.Inquiry, error) {
	return domain.Inquiry{ID: id, Status: status}, nil
}

func (f *fakeStore) AddTour(ctx context.Context, s domain.Session, t domain.Tour) (domain.Tour, error) {
	t.ID = "created"
	f.tours = append(f.tours, t)
	return t, nil
}

func (f *fakeStore) UpdateTour(ctx context.Context, s domain.Session, t domain.Tour) (domain.Tour, error) {
	return t, nil
}

func (f *fakeStore) DeleteTour(ctx context.Context, s domain.Session, id string) error { return nil }

func (f *fakeStore) UpdateSettings(ctx context.Context, s domain.Session, st domain.SiteSettings) (domain.SiteSettings, error) {
	f.st = st
	return st, nil
}

var errNoFake = errors.New("fake: no value")

type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.Tour:
		*d = v.([]domain.Tour)
	case *domain.SiteSettings:
		*d = v.(domain.SiteSettings)
	default:
		return false, errNoFake
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	err     error
	entries []domain.LogEntry
}

func (n *fakeNotifier) LogBooking(ctx context.Context, e domain.LogEntry) error {
	n.mu.Lock()
	n.entries = append(n.entries, e)
	n.mu.Unlock()
	return n.err
}
