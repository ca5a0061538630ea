// Package cache provides a small in-memory TTL cache with stampede
// protection for expensive upstream reads.
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// entry is one cached value with its build time.
type entry struct {
	value any
	built time.Time
}

// Store is an in-memory TTL cache. Concurrent misses on the same key share
// a single build call instead of stampeding the upstream.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	sf      singleflight.Group
}

// New creates a store whose entries expire after ttl. A zero or negative
// ttl disables storing entirely; concurrent duplicate builds still
// collapse into one call.
func New(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// GetOrBuild returns the value cached under key, calling build on a miss
// or after expiry. Build errors are returned to every waiting caller and
// nothing is stored.
func (s *Store) GetOrBuild(key string, build func() (any, error)) (any, error) {
	if v, ok := s.lookup(key); ok {
		return v, nil
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		// Double-check after winning the build slot.
		if v, ok := s.lookup(key); ok {
			return v, nil
		}

		v, err := build()
		if err != nil {
			return nil, err
		}

		if s.ttl > 0 {
			s.mu.Lock()
			s.entries[key] = entry{value: v, built: time.Now()}
			s.mu.Unlock()
		}
		return v, nil
	})
	return v, err
}

// Invalidate removes key from the store, forcing the next lookup to
// rebuild.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store) lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || s.ttl <= 0 || time.Since(e.built) > s.ttl {
		return nil, false
	}
	return e.value, true
}
