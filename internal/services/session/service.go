package session

import (
	"sync"

	"moneybox/internal/domain"
)

// Session holds the optional bearer token for the current user.
type Session struct {
	mu    sync.RWMutex
	token string
}

// New returns a signed-out Session.
func New() *Session { return &Session{} }

// SetToken records the bearer token issued on login.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the bearer token and whether one is present.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

// Clear drops the token, signing the user out.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Compile-time assertion that Session implements domain.TokenStore.
var _ domain.TokenStore = (*Session)(nil)
