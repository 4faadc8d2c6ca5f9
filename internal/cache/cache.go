// Package cache provides the TTL cache used to memoize remote API
// calls. Values are stored as JSON so the in-memory and Redis backends
// behave identically and cached entries never alias live data.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Cache is a read-through memoization store keyed by the exact call
// arguments. Implementations must treat a decode failure as a miss.
type Cache interface {
	// Get unmarshals the entry for key into dest and reports whether a
	// live entry was found.
	Get(ctx context.Context, key string, dest any) bool

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache is the default in-process backend: a mutex-guarded map
// with per-entry expiry.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get implements Cache.
func (c *MemoryCache) Get(_ context.Context, key string, dest any) bool {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(entry.expiresAt) {
		return false
	}

	return json.Unmarshal(entry.data, dest) == nil
}

// Set implements Cache.
func (c *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{data: data, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Purge drops expired entries. Callers may run it periodically; lookups
// are correct without it.
func (c *MemoryCache) Purge() {
	now := c.now()

	c.mu.Lock()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// NopCache never stores anything. Useful for tests and for disabling
// memoization without touching call sites.
type NopCache struct{}

// NewNopCache creates a cache that always misses.
func NewNopCache() *NopCache { return &NopCache{} }

// Get implements Cache.
func (*NopCache) Get(context.Context, string, any) bool { return false }

// Set implements Cache.
func (*NopCache) Set(context.Context, string, any, time.Duration) {}
