package sessions

import (
	"sync"
	"time"
)

// DefaultWizardTTL is how long an untouched posting session survives.
// Reads refresh it.
const DefaultWizardTTL = 24 * time.Hour

// Store is an in-memory TTL'd holder for in-flight wizard sessions. Posting
// sessions are short-lived and never persisted; an expired or unknown id is
// simply a miss.
type Store[T any] struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]entry[T]
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

func NewStore[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{
		ttl:  ttl,
		data: make(map[string]entry[T]),
	}
}

func (s *Store[T]) Put(id string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry[T]{
		value:     value,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Get returns the stored value and refreshes its TTL. Expired entries are
// removed on access.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	e, ok := s.data[id]
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id)
		return zero, false
	}
	e.expiresAt = time.Now().Add(s.ttl)
	s.data[id] = e
	return e.value, true
}

func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
