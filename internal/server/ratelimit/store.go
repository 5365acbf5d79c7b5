package ratelimit

import "sync"

// BucketStore holds per-key bucket state. The in-memory store is the only
// implementation shipped; the interface exists so a shared store (Redis,
// memcached) can be dropped in behind a multi-instance deployment.
// GetOrSet must be atomic: concurrent callers for the same key all receive
// the same bucket, so no consumed token is lost to a create race.
type BucketStore interface {
	Get(key string) (*Bucket, bool)
	GetOrSet(key string, create func() *Bucket) *Bucket
	Delete(key string)
	Keys() []string
}

// MemoryStore is a mutex-guarded map of buckets.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]*Bucket
}

// NewMemoryStore creates an empty in-memory bucket store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]*Bucket)}
}

func (s *MemoryStore) Get(key string) (*Bucket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.buckets[key]
	return b, ok
}

func (s *MemoryStore) GetOrSet(key string, create func() *Bucket) *Bucket {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.buckets[key]; ok {
		return b
	}
	b := create()
	s.buckets[key] = b
	return b
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
}

func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.buckets))
	for k := range s.buckets {
		keys = append(keys, k)
	}
	return keys
}
