package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	sess     Session
	deadline time.Time
}

// MemoryStore is the default in-process Store.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	entries  map[string]memoryEntry
	watchers map[string]map[int]chan Session
	nextID   int
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates a MemoryStore that drops sessions idle for ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:      ttl,
		entries:  make(map[string]memoryEntry),
		watchers: make(map[string]map[int]chan Session),
		stop:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) janitor() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, e := range s.entries {
				if now.After(e.deadline) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok || time.Now().After(e.deadline) {
		return Session{}, nil
	}
	return e.sess, nil
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, id string, sess Session) error {
	s.mu.Lock()
	s.entries[id] = memoryEntry{sess: sess, deadline: time.Now().Add(s.ttl)}
	s.notifyLocked(id, sess)
	s.mu.Unlock()
	return nil
}

// Clear implements Store.
func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.notifyLocked(id, Session{})
	s.mu.Unlock()
	return nil
}

// Watch implements Store.
func (s *MemoryStore) Watch(id string) (<-chan Session, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watchers[id] == nil {
		s.watchers[id] = make(map[int]chan Session)
	}
	key := s.nextID
	s.nextID++

	// Buffered so a slow reader never blocks Put/Clear.
	ch := make(chan Session, 4)
	s.watchers[id][key] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if set, ok := s.watchers[id]; ok {
			delete(set, key)
			if len(set) == 0 {
				delete(s.watchers, id)
			}
		}
	}
	return ch, cancel
}

func (s *MemoryStore) notifyLocked(id string, sess Session) {
	for _, ch := range s.watchers[id] {
		select {
		case ch <- sess:
		default:
		}
	}
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}
