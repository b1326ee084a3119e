// Package cache holds hot, slow-changing reads in process memory. Nothing in
// it is authoritative: every entry may expire or vanish and is recomputed
// from the store by the caller.
package cache

import (
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type Cache interface {
	Get(key string) (interface{}, bool)
	// Set stores value under key. A zero ttl uses the default TTL.
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	DeleteByPrefix(prefix string)

	// Generation changes on every Delete and DeleteByPrefix.
	Generation() uint64
	// SetIfGeneration stores value only if no invalidation happened since gen
	// was read, and reports whether it did.
	SetIfGeneration(key string, value interface{}, ttl time.Duration, gen uint64) bool
}

type Config struct {
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
}

type MemoryCache struct {
	store *gocache.Cache

	// mu orders invalidations against conditional sets.
	mu  sync.Mutex
	gen uint64
}

func NewMemoryCache(cfg Config) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(cfg.DefaultTTL, cfg.CleanupInterval),
	}
}

func (c *MemoryCache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *MemoryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.store.Set(key, value, expiration(ttl))
}

func (c *MemoryCache) SetIfGeneration(key string, value interface{}, ttl time.Duration, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return false
	}
	c.store.Set(key, value, expiration(ttl))
	return true
}

func (c *MemoryCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.store.Delete(key)
}

func (c *MemoryCache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
		}
	}
}

// Flush drops every entry.
func (c *MemoryCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.store.Flush()
}

// GetOrLoad is a read-through lookup: a hit of the right type is returned as
// is, otherwise load runs and its result is cached for ttl. A result is not
// cached when an invalidation landed while load was running, since it may
// predate the write behind that invalidation.
func GetOrLoad[T any](c Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	gen := c.Generation()
	value, err := load()
	if err != nil {
		var zero T
		return zero, err
	}

	c.SetIfGeneration(key, value, ttl, gen)
	return value, nil
}

func expiration(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return gocache.DefaultExpiration
	}
	return ttl
}
