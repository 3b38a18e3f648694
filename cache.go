// Package keyenv provides caching for exported secret sets.
package keyenv

import (
	"strings"
	"sync"
	"time"
)

// Cache defines the interface for caching exported secret sets.
// Implementations must be safe for concurrent access: the client may be
// invoked from many goroutines at once.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the value and true if found and fresh, nil and false otherwise.
	Get(key string) (any, bool)

	// Set stores a value in the cache with the specified key.
	Set(key string, value any)

	// DeletePrefix removes every entry whose key starts with prefix.
	DeletePrefix(prefix string)

	// Clear removes all entries.
	Clear()
}

// cacheEntry is a single cached item with its expiration time.
// Entries are replaced, never mutated.
type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// isExpired checks if the cache entry has expired.
func (e *cacheEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// MemoryCache is a mutex-guarded in-memory Cache with a fixed TTL.
// Expired entries are removed lazily: on the read that observes them, and
// swept in bulk on every write, so the map stays bounded without a
// background timer.
type MemoryCache struct {
	entries map[string]*cacheEntry
	ttl     time.Duration
	mu      sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache whose entries expire ttl
// after they are stored.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get retrieves a value by key. An entry past its expiry is removed and
// reported as a miss.
func (c *MemoryCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if entry.isExpired() {
		delete(c.entries, key)
		return nil, false
	}

	return entry.value, true
}

// Set stores a value with expiry now + ttl. Before inserting, all
// currently-expired entries are swept from the map.
func (c *MemoryCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, entry := range c.entries {
		if entry.isExpired() {
			delete(c.entries, k)
		}
	}

	c.entries[key] = &cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// DeletePrefix removes every entry whose key starts with prefix.
func (c *MemoryCache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

// Clear removes all entries.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// Size returns the number of fresh entries, sweeping expired ones.
func (c *MemoryCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for k, entry := range c.entries {
		if entry.isExpired() {
			delete(c.entries, k)
		} else {
			count++
		}
	}

	return count
}

// secretsCacheKey builds the cache key for the bulk export read path, the
// only cached operation.
func secretsCacheKey(projectID, environment string) string {
	return "secrets:" + projectID + ":" + environment + ":export"
}

// secretsCachePrefix scopes invalidation to one project+environment pair.
func secretsCachePrefix(projectID, environment string) string {
	return "secrets:" + projectID + ":" + environment
}
