package session

import (
	"sort"
	"sync"
	"time"

	"financial-agent/internal/agent"
)

const (
	DefaultCapacity        = 10
	DefaultCleanupInterval = 5 * time.Minute
)

// Config bounds the store. A zero IdleTTL keeps sessions until cleared.
type Config struct {
	Capacity        int
	IdleTTL         time.Duration
	CleanupInterval time.Duration
}

// Info summarizes one session for listings.
type Info struct {
	ID         string
	Count      int
	LastActive time.Time
	Last       agent.Exchange
}

type session struct {
	exchanges  []agent.Exchange
	lastActive time.Time
}

// Store keeps a bounded, oldest-first exchange history per session id.
// All methods are safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	capacity int
	idleTTL  time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

var _ agent.SessionStore = (*Store)(nil)

// New creates a Store. When cfg.IdleTTL is set a background sweep evicts
// sessions idle for longer than the TTL; call Close to stop it.
func New(cfg Config) *Store {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	s := &Store{
		sessions: make(map[string]*session),
		capacity: cfg.Capacity,
		idleTTL:  cfg.IdleTTL,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if cfg.IdleTTL > 0 {
		interval := cfg.CleanupInterval
		if interval <= 0 {
			interval = DefaultCleanupInterval
		}
		go s.cleanupLoop(interval)
	}
	return s
}

// Append records ex, evicting the single oldest exchange when full.
func (s *Store) Append(sessionID string, ex agent.Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{exchanges: make([]agent.Exchange, 0, s.capacity)}
		s.sessions[sessionID] = sess
	}
	if len(sess.exchanges) >= s.capacity {
		copy(sess.exchanges, sess.exchanges[1:])
		sess.exchanges = sess.exchanges[:len(sess.exchanges)-1]
	}
	sess.exchanges = append(sess.exchanges, ex)
	sess.lastActive = s.now()
}

// History returns a copy of the session, oldest first. Unknown ids yield an
// empty, non-nil slice.
func (s *Store) History(sessionID string) []agent.Exchange {
	return s.Recent(sessionID, 0)
}

// Recent returns up to the last n exchanges, oldest first. n <= 0 means all.
func (s *Store) Recent(sessionID string, n int) []agent.Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return []agent.Exchange{}
	}
	src := sess.exchanges
	if n > 0 && len(src) > n {
		src = src[len(src)-n:]
	}
	out := make([]agent.Exchange, len(src))
	copy(out, src)
	return out
}

// Clear deletes the session. Clearing an unknown id is a no-op.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// List returns every non-empty session whose id satisfies match (nil matches
// all), most recently active first.
func (s *Store) List(match func(id string) bool) []Info {
	s.mu.Lock()
	out := make([]Info, 0, len(s.sessions))
	for id, sess := range s.sessions {
		if len(sess.exchanges) == 0 || (match != nil && !match(id)) {
			continue
		}
		out = append(out, Info{
			ID:         id,
			Count:      len(sess.exchanges),
			LastActive: sess.lastActive,
			Last:       sess.exchanges[len(sess.exchanges)-1],
		})
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Last.Timestamp.Equal(out[j].Last.Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Last.Timestamp.After(out[j].Last.Timestamp)
	})
	return out
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close stops the idle sweep. It is safe to call more than once.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictIdle()
		case <-s.stop:
			return
		}
	}
}

// evictIdle removes sessions idle longer than idleTTL and reports how many.
func (s *Store) evictIdle() int {
	if s.idleTTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastActive.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
