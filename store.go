package onceguard

import "sync"

// Store is the marker store a Guard remembers handled versions in.
// It is a minimal key-value port: the guard only needs point reads and
// overwriting writes, nothing about eviction or staleness.
//
// A Guard serializes its own read-then-write sequences, so implementations
// only need Get and Set to be individually safe for concurrent use.
type Store interface {
	// Get returns the stored version for key, and whether one exists.
	Get(key string) (int64, bool)
	// Set stores version under key, overwriting any previous value.
	Set(key string, version int64)
}

// MemoryStore is the default Store: a mutex-protected map.
// Entries live for the lifetime of the store; the guard never deletes them.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]int64)}
}

func (s *MemoryStore) Get(key string) (int64, bool) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	return v, ok
}

func (s *MemoryStore) Set(key string, version int64) {
	s.mu.Lock()
	s.entries[key] = version
	s.mu.Unlock()
}
