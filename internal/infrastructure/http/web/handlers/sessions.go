package handlers

import (
	"sync"
	"time"
)

// sessionScoped keeps one value per browsing session. Entries untouched
// for ttl are swept out so abandoned sessions (crawlers, closed tabs)
// don't accumulate state forever.
type sessionScoped[T any] struct {
	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	entries   map[string]*scopedEntry[T]
	lastSweep time.Time
}

type scopedEntry[T any] struct {
	value    T
	lastSeen time.Time
}

func newSessionScoped[T any](ttl time.Duration) *sessionScoped[T] {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &sessionScoped[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*scopedEntry[T]),
	}
}

// get returns the session's value, creating it on first access. Access
// refreshes the entry's lifetime.
func (s *sessionScoped[T]) get(id string, create func() T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.ttl/4 {
		s.sweepLocked(now)
	}

	e, ok := s.entries[id]
	if !ok {
		e = &scopedEntry[T]{value: create()}
		s.entries[id] = e
	}
	e.lastSeen = now
	return e.value
}

// sweepLocked drops entries idle longer than ttl. Caller holds mu.
func (s *sessionScoped[T]) sweepLocked(now time.Time) {
	s.lastSweep = now
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, id)
		}
	}
}

func (s *sessionScoped[T]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
