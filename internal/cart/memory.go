package cart

import (
	"sync"
	"time"
)

// DefaultSessionTTL bounds how long an idle guest cart is kept before it
// is swept. Without a bound, a client cycling session IDs would grow the
// store without limit.
const DefaultSessionTTL = 24 * time.Hour

// SessionStore keeps guest carts in memory, keyed by session ID. It is
// the service-side stand-in for the original client's local storage:
// guest mutations never fail and do not touch the database. Idle carts
// expire after the configured TTL.
type SessionStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	carts map[string]*sessionEntry
}

type sessionEntry struct {
	repo     *memoryRepository
	lastSeen time.Time
}

// NewSessionStore creates an empty guest cart store with the default TTL
func NewSessionStore() *SessionStore {
	return NewSessionStoreWithTTL(DefaultSessionTTL)
}

// NewSessionStoreWithTTL creates an empty guest cart store whose idle
// carts expire after ttl.
func NewSessionStoreWithTTL(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:   ttl,
		now:   time.Now,
		carts: make(map[string]*sessionEntry),
	}
}

// ForSession returns the repository for the given session, creating it
// on first use and refreshing its expiry. Expired sessions are swept on
// every call.
func (s *SessionStore) ForSession(sessionID string) Repository {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweep(now)
	entry, ok := s.carts[sessionID]
	if !ok {
		entry = &sessionEntry{repo: &memoryRepository{}}
		s.carts[sessionID] = entry
	}
	entry.lastSeen = now
	return entry.repo
}

// Drop discards the cart for the given session
func (s *SessionStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Len reports how many guest carts are currently held
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// sweep removes sessions idle for longer than the TTL. Caller holds mu.
func (s *SessionStore) sweep(now time.Time) {
	for id, entry := range s.carts {
		if now.Sub(entry.lastSeen) > s.ttl {
			delete(s.carts, id)
		}
	}
}

// memoryRepository holds one guest cart. IDs are session-local.
type memoryRepository struct {
	mu     sync.Mutex
	nextID uint
	lines  []Line
}

func (r *memoryRepository) Load() ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out, nil
}

func (r *memoryRepository) Save(line *Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if line.ID == 0 {
		r.nextID++
		line.ID = r.nextID
		r.lines = append(r.lines, *line)
		return nil
	}
	for i := range r.lines {
		if r.lines[i].ID == line.ID {
			r.lines[i] = *line
			return nil
		}
	}
	r.lines = append(r.lines, *line)
	return nil
}

func (r *memoryRepository) Remove(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.lines {
		if r.lines[i].ID == id {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
	return nil
}
