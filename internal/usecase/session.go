package usecase

import (
	"sync"

	"github.com/xavierca1/greenapi-console/internal/entity"
)

// Session holds the credentials of the current connection. It is owned by
// the Console and passed explicitly; writes always replace the whole value.
type Session struct {
	mu    sync.RWMutex
	creds *entity.Credentials
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Current() (entity.Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.creds == nil {
		return entity.Credentials{}, false
	}
	return *s.creds, true
}

func (s *Session) Connected() bool {
	_, ok := s.Current()
	return ok
}

func (s *Session) Replace(c entity.Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = &c
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
}
