package form

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an idle session is kept.
const DefaultSessionTTL = 30 * time.Minute

// Store keeps sessions in memory, keyed by a random identifier.
// Store is safe for concurrent use.
type Store struct {
	controller *Controller
	ttl        time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates a new Store. A non-positive ttl uses DefaultSessionTTL.
func NewStore(controller *Controller, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		controller: controller,
		ttl:        ttl,
		sessions:   make(map[string]*Session),
	}
}

// Get returns the session with the given ID.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Create starts a new session with a fresh random ID.
func (s *Store) Create() *Session {
	sess := NewSession(uuid.NewString(), s.controller)

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()

	return sess
}

// GetOrCreate returns the session with the given ID, creating a new one
// (with a new ID) if it does not exist. The second result is true if a
// session was created.
func (s *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			sess.Touch()
			return sess, false
		}
	}
	return s.Create(), true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than the TTL as of now.
// Busy sessions are never removed. Returns the number removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.Busy() {
			continue
		}
		if now.Sub(sess.LastSeen()) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is canceled.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}
