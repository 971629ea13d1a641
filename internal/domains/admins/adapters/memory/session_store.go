package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aeshsummer/storefront-api/internal/domains/admins/ports"
)

// SessionStore is an in-memory SessionStore with TTL enforcement on lookup.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

type sessionEntry struct {
	username  string
	expiresAt time.Time
}

// DefaultSessionTTL matches the dashboard cookie lifetime.
const DefaultSessionTTL = time.Hour

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock overrides the time source, for expiry tests.
func (s *SessionStore) WithClock(now func() time.Time) *SessionStore {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *SessionStore) Save(_ context.Context, username, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = sessionEntry{username: username, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *SessionStore) Lookup(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[token]
	if !ok {
		return "", ports.ErrSessionNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.sessions, token)
		return "", ports.ErrSessionNotFound
	}
	return entry.username, nil
}

func (s *SessionStore) Delete(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, entry := range s.sessions {
		if entry.username == username {
			delete(s.sessions, token)
		}
	}
	return nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
