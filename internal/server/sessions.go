package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Jaesu26/pairrot-solver/internal/solver"
)

var (
	// ErrSessionNotFound is returned for an unknown or deleted session id.
	ErrSessionNotFound = errors.New("session not found")
	// ErrTooManySessions is returned when the store is at capacity.
	ErrTooManySessions = errors.New("too many sessions")
)

// Session is one game held by the API. Its solver is guarded by mu.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu     sync.Mutex
	solver *solver.Solver
	turns  int
}

// with runs fn while holding the session lock.
func (s *Session) with(fn func(*solver.Solver) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.solver)
}

// SessionStore holds live API sessions.
type SessionStore interface {
	// Create registers a solver under a new id.
	Create(ctx context.Context, s *solver.Solver) (*Session, error)

	// Get looks up a session by id.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// Len returns the number of live sessions.
	Len() int
}

// memory is a map-based SessionStore. State is lost on restart.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	max      int
}

// NewMemoryStore returns an in-memory SessionStore holding at most maxSessions.
// maxSessions <= 0 means unbounded.
func NewMemoryStore(maxSessions int) SessionStore {
	return &memory{sessions: make(map[string]*Session), max: maxSessions}
}

func (m *memory) Create(ctx context.Context, s *solver.Solver) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.max > 0 && len(m.sessions) >= m.max {
		return nil, ErrTooManySessions
	}
	sess := &Session{ID: ulid.Make().String(), CreatedAt: time.Now().UTC(), solver: s}
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrSessionNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
