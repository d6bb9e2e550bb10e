// Package sessionstore owns the in-progress wizard sessions. Each guest
// drives exactly one machine per session; the store only adds TTL expiry
// and concurrency safety around gin's request pool.
package sessionstore

import (
	"sync"
	"time"

	"cast-booking/internal/domain/reservation"
	"cast-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Session wraps a draft machine with identity and liveness bookkeeping.
type Session struct {
	ID      uuid.UUID
	UserID  string
	machine *reservation.Machine

	busy      bool
	startedAt time.Time
	updatedAt time.Time
	mu        sync.Mutex
}

// Update runs fn with exclusive access to the machine and refreshes the
// session's liveness timestamp.
func (s *Session) Update(now time.Time, fn func(*reservation.Machine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := fn(s.machine)
	s.updatedAt = now
	return err
}

// TryBeginSubmit marks the session busy for the duration of a submit.
// It fails when a submit is already in flight, which enforces the
// at-most-one-in-flight rule per wizard.
func (s *Session) TryBeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Session) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.updatedAt) > ttl
}

// Store manages wizard sessions keyed by session ID.
type Store struct {
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	clock    clock.Clock
	mu       sync.RWMutex
}

func NewStore(ttl time.Duration, clk clock.Clock) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		clock:    clk,
	}
}

// Create registers a fresh session around the given machine. Expired
// sessions are purged opportunistically here.
func (st *Store) Create(userID string, machine *reservation.Machine) *Session {
	now := st.clock.Now()

	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		if s.expired(now, st.ttl) {
			delete(st.sessions, id)
		}
	}

	session := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		machine:   machine,
		startedAt: now,
		updatedAt: now,
	}
	st.sessions[session.ID] = session
	return session
}

// Get returns a live session. An expired session is removed and reported
// as missing; the guest starts over.
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	session, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if session.expired(st.clock.Now(), st.ttl) {
		st.Delete(id)
		return nil, false
	}
	return session, true
}

func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
