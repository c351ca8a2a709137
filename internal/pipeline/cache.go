package pipeline

import (
	"sync"
	"sync/atomic"
	"time"
)

// catalogCache is a concurrent-safe LRU cache of computed catalogs with TTL
// expiration, keyed by month. Recomputation after expiry is byte-for-byte
// reproducible from the same input file, so the TTL is purely a load shedder
// for repeated dashboard requests.
type catalogCache struct {
	mu         sync.Mutex
	entries    map[string]*cacheEntry
	order      []string // LRU order: front=oldest, back=newest
	maxEntries int
	ttl        time.Duration
	hits       atomic.Int64
	misses     atomic.Int64
}

type cacheEntry struct {
	value     any
	createdAt time.Time
}

// CacheStats contains cache performance counters.
type CacheStats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

func newCatalogCache(maxEntries int, ttl time.Duration) *catalogCache {
	return &catalogCache{
		entries:    make(map[string]*cacheEntry),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

// get retrieves a cached value. Returns nil on miss or expiration.
func (c *catalogCache) get(key string) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return nil
	}

	if time.Since(entry.createdAt) > c.ttl {
		delete(c.entries, key)
		c.removeFromOrder(key)
		c.misses.Add(1)
		return nil
	}

	c.removeFromOrder(key)
	c.order = append(c.order, key)
	c.hits.Add(1)
	return entry.value
}

// put stores a value, evicting the oldest entry at capacity.
func (c *catalogCache) put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = &cacheEntry{value: value, createdAt: time.Now()}
		c.removeFromOrder(key)
		c.order = append(c.order, key)
		return
	}

	for len(c.entries) >= c.maxEntries && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = &cacheEntry{value: value, createdAt: time.Now()}
	c.order = append(c.order, key)
}

// stats returns cache performance counters.
func (c *catalogCache) stats() CacheStats {
	c.mu.Lock()
	entries := len(c.entries)
	c.mu.Unlock()

	return CacheStats{
		Entries: entries,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}

// removeFromOrder removes a key from the LRU order slice.
func (c *catalogCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
