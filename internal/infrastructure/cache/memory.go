package cache

import (
	"context"
	"sync"
	"time"

	"github.com/partscout/backend/internal/domain"
)

// cacheItem represents a single item in the cache with expiration
type cacheItem struct {
	listings   []domain.Listing
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache. A zero TTL means entries
// never expire, matching the durable file cache's semantics; a positive TTL
// makes it a bounded substitute for ephemeral deployments and tests.
type MemoryCache struct {
	data  map[string]cacheItem
	ttl   time.Duration
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache. ttl of zero disables expiry.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
		ttl:  ttl,
	}

	if ttl > 0 {
		// Remove expired entries every 10 minutes
		go cache.cleanupExpired()
	}

	return cache
}

// Get retrieves the listings stored under key
func (c *MemoryCache) Get(ctx context.Context, key string) ([]domain.Listing, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if c.expired(item) {
		return nil, domain.ErrCacheMiss
	}

	// Copy so callers can't mutate the stored entry.
	listings := make([]domain.Listing, len(item.listings))
	copy(listings, item.listings)
	return listings, nil
}

// Set stores the listings under key
func (c *MemoryCache) Set(ctx context.Context, key string, listings []domain.Listing) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	stored := make([]domain.Listing, len(listings))
	copy(stored, listings)

	item := cacheItem{listings: stored}
	if c.ttl > 0 {
		item.expiration = time.Now().Add(c.ttl)
	}
	c.data[key] = item

	return nil
}

// Delete removes the entry for key
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return false, nil
	}

	return !c.expired(item), nil
}

// expired reports whether an item has passed its expiration time
func (c *MemoryCache) expired(item cacheItem) bool {
	return c.ttl > 0 && time.Now().After(item.expiration)
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}
