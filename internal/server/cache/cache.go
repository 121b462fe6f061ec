// Package cache holds rendered read responses between catalog changes.
// Entries expire after a TTL and the whole cache is flushed whenever the
// wardrobe changes.
package cache

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache wraps go-cache with hit and miss accounting. Every Clear starts a
// new generation; values computed during an older generation are never
// stored.
type Cache struct {
	store  *gocache.Cache
	hits   atomic.Int64
	misses atomic.Int64

	mu         sync.Mutex
	generation uint64

	onLookup func(hit bool)
}

// New creates a cache. defaultTTL is how long entries live and
// cleanupInterval is how often expired entries are purged.
func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

// OnLookup registers a callback observing every Get. It is not safe to
// call concurrently with Get.
func (c *Cache) OnLookup(fn func(hit bool)) {
	c.onLookup = fn
}

// Key identifies a read request by path and raw query.
func Key(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return r.URL.Path
	}
	return r.URL.Path + "?" + r.URL.RawQuery
}

// Get retrieves a value from the cache.
func (c *Cache) Get(key string) (any, bool) {
	v, ok := c.store.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	if c.onLookup != nil {
		c.onLookup(ok)
	}
	return v, ok
}

// Set stores a value with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// Generation returns the current generation. Read it before computing a
// value that will be passed to SetIfCurrent.
func (c *Cache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// SetIfCurrent stores value only if no Clear happened since gen was read.
// It reports whether the value was stored.
func (c *Cache) SetIfCurrent(key string, value any, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return false
	}
	c.store.Set(key, value, gocache.DefaultExpiration)
	return true
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes every entry and starts a new generation.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.store.Flush()
}

// ItemCount returns the number of entries, including expired ones not yet
// purged.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}

// Stats is a point-in-time view of cache usage.
type Stats struct {
	Items  int   `json:"items"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	return Stats{
		Items:  c.store.ItemCount(),
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}
