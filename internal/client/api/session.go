package api

import (
	"context"
	"errors"
	"sync"
)

// ErrNotLoggedIn is returned by a SessionProvider that holds no token.
var ErrNotLoggedIn = errors.New("not logged in")

// SessionProvider supplies the bearer token attached to every authenticated call.
type SessionProvider interface {
	Token(ctx context.Context) (string, error)
}

// Session keeps the token issued at login in memory.
type Session struct {
	mu    sync.RWMutex
	token string
}

func NewSession(token string) *Session {
	return &Session{token: token}
}

func (s *Session) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNotLoggedIn
	}
	return s.token, nil
}

func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) Clear() {
	s.Set("")
}
