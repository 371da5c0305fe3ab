package session

import (
	"fmt"
	"sync"

	"github.com/roach88/unitconv/internal/history"
)

// Manager hosts several independent sessions.
// Every session gets a fresh store from the configured backend;
// stores are never shared.
//
// Thread-safety: Manager is safe for concurrent use. The sessions it
// returns are not.
type Manager struct {
	backend string

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a manager opening stores with the named history backend.
func NewManager(backend string) (*Manager, error) {
	if backend == "" {
		backend = history.BackendMemory
	}
	if !history.IsValidBackend(backend) {
		return nil, fmt.Errorf("unknown history backend %q: must be one of %v", backend, history.ValidBackends)
	}
	return &Manager{backend: backend, sessions: make(map[string]*Session)}, nil
}

// Start opens a new session.
func (m *Manager) Start() (*Session, error) {
	store, err := history.Open(m.backend)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	s := New(store)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
	return s, nil
}

// Get returns the live session with id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, newError(ErrCodeNotFound, "no session %q", id)
	}
	return s, nil
}

// End closes the session with id and forgets it.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return newError(ErrCodeNotFound, "no session %q", id)
	}
	return s.Close()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close ends every live session. The first close error is returned.
func (m *Manager) Close() error {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	var first error
	for _, s := range sessions {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
