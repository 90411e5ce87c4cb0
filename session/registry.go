package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry holds the open sessions of the HTTP API.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	factory  func() *Session
}

// NewRegistry uses factory to create each new session.
func NewRegistry(factory func() *Session) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		factory:  factory,
	}
}

func (r *Registry) New() *Session {
	s := r.factory()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s

	return s
}

func (r *Registry) Get(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	return s, ok
}

// Remove closes the session and forgets it.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.Close()
	}
	return ok
}

// Close tears down every session.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[uuid.UUID]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
