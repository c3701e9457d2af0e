package cache

import (
	"sync"
	"time"
)

// Class groups cache keys by the resource type they depend on, so a mutation
// invalidates only the responses it can actually change instead of flushing
// the whole cache.
type Class string

const (
	ClassNutrition Class = "nutrition"
	ClassActivity  Class = "activity"
	ClassProfile   Class = "profile"
)

type entry struct {
	payload     []byte
	contentType string
	classes     []Class
	expiresAt   time.Time
}

// Store memoizes responses per exact key for a short TTL. Safe for
// concurrent use.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   func() time.Time
	entries map[string]entry
}

// NewStore returns a store with the given TTL. A non-positive TTL disables
// caching entirely (Get never hits).
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		clock:   time.Now,
		entries: make(map[string]entry),
	}
}

// Get returns the memoized payload and content type for key, if present and
// fresh. Expired entries are dropped on access.
func (s *Store) Get(key string) ([]byte, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, "", false
	}
	if s.clock().After(e.expiresAt) {
		delete(s.entries, key)
		return nil, "", false
	}
	return e.payload, e.contentType, true
}

// Set memoizes a response under key. A response derived from more than one
// resource type carries every class it depends on, so a mutation of any of
// them evicts it.
func (s *Store) Set(key string, contentType string, payload []byte, classes ...Class) {
	if s.ttl <= 0 {
		return
	}
	buf := make([]byte, len(payload))
	copy(buf, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{
		payload:     buf,
		contentType: contentType,
		classes:     classes,
		expiresAt:   s.clock().Add(s.ttl),
	}
}

// Invalidate drops every entry tagged with any of the given classes.
func (s *Store) Invalidate(classes ...Class) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, e := range s.entries {
		if anyClassMatches(e.classes, classes) {
			delete(s.entries, key)
		}
	}
}

func anyClassMatches(tagged, requested []Class) bool {
	for _, have := range tagged {
		for _, want := range requested {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Flush drops everything. Kept for completeness; Invalidate is the normal
// path.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
}

// Len reports the number of live entries, expired or not. Used by tests.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
