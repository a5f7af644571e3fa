// In-memory cache implementation: a sharded, mutex-guarded map with
// optional per-entry TTL. Sharding spreads lock contention across
// concurrent readers/writers, per the concurrency discipline this
// gateway's manifest cache depends on.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"
)

const defaultShardCount = 16

type entry struct {
	value     interface{}
	expiresAt time.Time // zero means no expiration
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

type shard struct {
	mu   sync.RWMutex
	data map[Key]entry
}

type memoryCache struct {
	shards      []*shard
	hits        uint64
	misses      uint64
	expirations uint64
}

func newMemory(opts Options) *memoryCache {
	n := opts.ShardCount
	if n <= 0 {
		n = defaultShardCount
	}
	shards := make([]*shard, n)
	for i := range shards {
		shards[i] = &shard{data: make(map[Key]entry)}
	}
	return &memoryCache{shards: shards}
}

func (c *memoryCache) shardFor(key Key) *shard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return c.shards[h.Sum32()%uint32(len(c.shards))]
}

func (c *memoryCache) Get(key Key) (interface{}, bool) {
	s := c.shardFor(key)
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		atomic.AddUint64(&c.misses, 1)
		return nil, false
	}
	if e.expired(time.Now()) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		atomic.AddUint64(&c.expirations, 1)
		atomic.AddUint64(&c.misses, 1)
		return nil, false
	}
	atomic.AddUint64(&c.hits, 1)
	return e.value, true
}

func (c *memoryCache) Set(key Key, value interface{}, ttl time.Duration) {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	s := c.shardFor(key)
	s.mu.Lock()
	s.data[key] = e
	s.mu.Unlock()
}

func (c *memoryCache) Delete(key Key) {
	s := c.shardFor(key)
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

func (c *memoryCache) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.data = make(map[Key]entry)
		s.mu.Unlock()
	}
}

func (c *memoryCache) Size() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.data)
		s.mu.RUnlock()
	}
	return total
}

func (c *memoryCache) Stats() Stats {
	return Stats{
		Hits:        atomic.LoadUint64(&c.hits),
		Misses:      atomic.LoadUint64(&c.misses),
		Size:        c.Size(),
		Expirations: atomic.LoadUint64(&c.expirations),
	}
}
