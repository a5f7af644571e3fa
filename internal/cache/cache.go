// Generic cache interface: Get/Set/Delete/Clear, optional TTL, and basic
// hit/miss statistics. The manifest cache (internal/manifest) is the one
// consumer in this repo and always stores with TTL zero, so its entries
// never expire and are never evicted.
package cache

import "time"

// Cache defines a generic caching interface.
type Cache interface {
	// Get retrieves a value from the cache.
	Get(key Key) (interface{}, bool)

	// Set stores a value in the cache. A zero ttl means the entry never
	// expires.
	Set(key Key, value interface{}, ttl time.Duration)

	// Delete removes a value from the cache.
	Delete(key Key)

	// Clear removes all values from the cache.
	Clear()

	// Size returns the number of items currently stored.
	Size() int

	// Stats returns cache hit/miss statistics.
	Stats() Stats
}

// Stats represents cache performance statistics.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Size        int
	Expirations uint64
}

// Options configures a memory cache instance.
type Options struct {
	ShardCount int // number of shards; 0 selects a sane default
}

// New creates a new sharded in-memory cache.
func New(opts Options) Cache {
	return newMemory(opts)
}
