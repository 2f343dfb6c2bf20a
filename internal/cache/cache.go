// Package cache provides the in-memory TTL cache wrapped around all
// upstream fetches. Entries expire lazily on read; ClearExpired is the
// explicit sweep. The cache is safe to disable entirely — callers must
// tolerate "always absent" and just fetch again.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL matches the original client's five-minute payload window.
const DefaultTTL = 5 * time.Minute

type entry struct {
	payload   []byte
	createdAt time.Time
}

// Cache is a thread-safe in-memory TTL cache keyed by request URL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	enabled bool

	// now is swappable so tests can drive expiry deterministically.
	now func() time.Time
}

// New creates a cache. Pass enabled=false for a no-op cache; ttl <= 0
// falls back to DefaultTTL.
func New(enabled bool, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		enabled: enabled,
		now:     time.Now,
	}
}

// NewWithClock creates an enabled cache with an injected clock.
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	c := New(true, ttl)
	c.now = now
	return c
}

// Get retrieves a cached payload. Returns ok=false for unseen keys and
// for entries older than the TTL; expired entries are not removed here.
func (c *Cache) Get(key string) ([]byte, bool) {
	if !c.enabled {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, exists := c.entries[key]
	if !exists || c.now().Sub(e.createdAt) >= c.ttl {
		return nil, false
	}
	return e.payload, true
}

// Set stores a payload, unconditionally overwriting any previous entry.
func (c *Cache) Set(key string, payload []byte) {
	if !c.enabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{payload: payload, createdAt: c.now()}
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// ClearExpired removes entries past the TTL and returns how many went.
func (c *Cache) ClearExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	cleared := 0
	for key, e := range c.entries {
		if now.Sub(e.createdAt) >= c.ttl {
			delete(c.entries, key)
			cleared++
		}
	}
	return cleared
}

// Keys returns the stored keys, including expired ones not yet swept.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// Stats returns cache statistics for the health endpoint.
func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active := 0
	now := c.now()
	for _, e := range c.entries {
		if now.Sub(e.createdAt) < c.ttl {
			active++
		}
	}
	return map[string]interface{}{
		"enabled":      c.enabled,
		"ttl_seconds":  int(c.ttl.Seconds()),
		"total_keys":   len(c.entries),
		"active_keys":  active,
		"expired_keys": len(c.entries) - active,
	}
}
