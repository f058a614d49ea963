package httpserver

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"danube_tours/internal/domain"
)

type sessionCtxKey struct{}

// SessionStore maps opaque admin tokens to store sessions. The token
// handed to the client never contains the store's access token; that
// one stays server-side.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domain.Session)}
}

func (s *SessionStore) Put(sess domain.Session) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()
	return token
}

func (s *SessionStore) Get(token string) (domain.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok || !sess.Valid() {
		if ok {
			s.Drop(token)
		}
		return domain.Session{}, false
	}
	return sess, true
}

func (s *SessionStore) Drop(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Require is the admin gate: a valid bearer token puts the store
// session (and the token itself) on the request context.
func (s *SessionStore) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		sess, ok := s.Get(token)
		if !ok {
			writeProblem(w, http.StatusUnauthorized, "Unauthorized", "missing or expired session")
			return
		}
		ctx := context.WithValue(r.Context(), sessionCtxKey{}, adminSession{token: token, sess: sess})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type adminSession struct {
	token string
	sess  domain.Session
}

func sessionFrom(r *http.Request) adminSession {
	v, _ := r.Context().Value(sessionCtxKey{}).(adminSession)
	return v
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// sessionTTLFallback bounds sessions whose token response carried no
// expiry.
const sessionTTLFallback = time.Hour

func nowPlusFallbackTTL() time.Time { return time.Now().Add(sessionTTLFallback) }
