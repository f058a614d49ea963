package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Session is an authenticated admin session against the remote store.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
}

func (s Session) Valid() bool {
	return s.AccessToken != "" && (s.ExpiresAt.IsZero() || time.Now().Before(s.ExpiresAt))
}

// Store is the remote data gateway: authenticated CRUD over the four
// hosted collections. The gateway is the sole writer of persisted
// entities; callers treat returned records as the new source of truth.
type Store interface {
	// Public reads.
	ListTours(ctx context.Context) ([]Tour, error)
	GetSettings(ctx context.Context) (SiteSettings, error)

	// Public writes (the contact flow inserts anonymously).
	AddInquiry(ctx context.Context, draft InquiryDraft) (Inquiry, error)
	AddLogEntry(ctx context.Context, e LogEntry) (LogEntry, error)

	// Auth.
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, s Session) error

	// Protected reads; fetched only with a live session.
	ListInquiries(ctx context.Context, s Session) ([]Inquiry, error)
	ListLogEntries(ctx context.Context, s Session) ([]LogEntry, error)

	// Protected writes.
	UpdateInquiryStatus(ctx context.Context, s Session, id string, status InquiryStatus) (Inquiry, error)
	AddTour(ctx context.Context, s Session, t Tour) (Tour, error)
	UpdateTour(ctx context.Context, s Session, t Tour) (Tour, error)
	DeleteTour(ctx context.Context, s Session, id string) error
	UpdateSettings(ctx context.Context, s Session, st SiteSettings) (SiteSettings, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Notifier mirrors a booking log entry to an external sink. Calls are
// best-effort; failures never surface to the visitor.
type Notifier interface {
	LogBooking(ctx context.Context, e LogEntry) error
}
