package onceguard

import "github.com/dgraph-io/ristretto/v2"

// RistrettoStore adapts a ristretto cache to the Store interface, for
// hosts that already run one and want bounded marker memory. An evicted
// marker makes the guard re-run the effect for the current version, so
// size the cache to hold one entry per live effect id.
type RistrettoStore struct {
	cache *ristretto.Cache[string, int64]
}

// NewRistrettoStore wraps an existing cache. The caller keeps ownership
// and is responsible for closing it.
func NewRistrettoStore(cache *ristretto.Cache[string, int64]) *RistrettoStore {
	return &RistrettoStore{cache: cache}
}

func (s *RistrettoStore) Get(key string) (int64, bool) {
	return s.cache.Get(key)
}

// Set stores the marker and waits for the write buffer to drain.
// Ristretto applies writes asynchronously; without the Wait, a marker
// could be invisible to the very next Get and break the once-per-version
// contract.
func (s *RistrettoStore) Set(key string, version int64) {
	s.cache.Set(key, version, 1)
	s.cache.Wait()
}
