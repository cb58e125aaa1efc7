// Package cachemanager wraps go-cache with typed values and read-through
// loading. The UI uses it to keep rendered previews across frames.
package cachemanager

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/stylebook/internal/log"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// Cache is a typed in-memory cache keyed by string.
type Cache[V any] struct {
	useCase string
	cache   *gocache.Cache
	hits    atomic.Int64
	misses  atomic.Int64
}

// Stats reports lookups since creation or the last Flush.
type Stats struct {
	Hits   int64
	Misses int64
	Items  int
}

// New creates a cache. useCase names the cache in log lines.
func New[V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *Cache[V] {
	return &Cache[V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves an item from the cache by its key.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	value, found := c.cache.Get(key)
	if !found {
		c.misses.Add(1)
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "cache", c.useCase, "key", key)
		c.misses.Add(1)
		return zero, false
	}

	c.hits.Add(1)
	return v, true
}

// Set stores value under key. A zero ttl uses the cache default.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// GetOrLoad returns the cached value for key, or calls load and caches
// its result. Errors are returned without caching.
func (c *Cache[V]) GetOrLoad(key string, ttl time.Duration, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := load()
	if err != nil {
		log.Debug(log.CatCache, "load failed", "cache", c.useCase, "key", key, "error", err)
		return v, err
	}
	c.Set(key, v, ttl)
	return v, nil
}

// Delete removes keys from the cache.
func (c *Cache[V]) Delete(keys ...string) {
	for _, key := range keys {
		c.cache.Delete(key)
	}
}

// Flush removes every item and resets the counters.
func (c *Cache[V]) Flush() {
	c.cache.Flush()
	c.hits.Store(0)
	c.misses.Store(0)
	log.Debug(log.CatCache, "cache flushed", "cache", c.useCase)
}

// Stats returns the hit and miss counters and the current item count.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Items:  c.cache.ItemCount(),
	}
}
