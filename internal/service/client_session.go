package service

import (
	"sync"

	"github.com/MKhiriev/go-note-keeper/models"
)

// SessionStore holds the signed-in session shared by the client services.
type SessionStore struct {
	mu      sync.RWMutex
	session models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Get returns the session and whether it is usable.
func (s *SessionStore) Get() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, !s.session.IsEmpty()
}

func (s *SessionStore) Set(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{}
}
