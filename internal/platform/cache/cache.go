// Package cache provides an in-memory caching layer with TTL and LRU eviction.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Cache defines the interface for a generic cache
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns the value and true if found, nil and false otherwise.
	Get(key string) (interface{}, bool)

	// Set stores a value in the cache with a TTL.
	// If ttl is 0, the item never expires.
	Set(key string, value interface{}, ttl time.Duration)

	// Delete removes a value from the cache.
	Delete(key string)

	// Clear removes all values from the cache.
	Clear()

	// Size returns the current number of items in the cache.
	Size() int
}

// entry represents a cached item with metadata
type entry struct {
	key       string
	value     interface{}
	expiresAt time.Time
	element   *list.Element
}

// MemoryCache implements an in-memory LRU cache with TTL support.
// Probe verdicts are cached per identifier so re-runs over overlapping
// candidate spaces do not hit the endpoint twice.
type MemoryCache struct {
	mu       sync.RWMutex
	capacity int
	items    map[string]*entry
	lruList  *list.List
}

// NewMemoryCache creates a new in-memory cache with the specified capacity.
// When the cache reaches capacity, the least recently used item is evicted.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity <= 0 {
		capacity = 100
	}
	return &MemoryCache{
		capacity: capacity,
		items:    make(map[string]*entry),
		lruList:  list.New(),
	}
}

// Get retrieves a value from the cache.
// If the item exists and hasn't expired, it's marked as recently used.
func (c *MemoryCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.items[key]
	if !exists {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.deleteEntry(e)
		return nil, false
	}

	c.lruList.MoveToFront(e.element)
	return e.value, true
}

// Set stores a value in the cache with a TTL.
// If the key already exists, its value and TTL are updated.
// If ttl is 0, the item never expires.
func (c *MemoryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if existing, exists := c.items[key]; exists {
		existing.value = value
		existing.expiresAt = expiresAt
		c.lruList.MoveToFront(existing.element)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictLRU()
	}

	e := &entry{key: key, value: value, expiresAt: expiresAt}
	e.element = c.lruList.PushFront(e)
	c.items[key] = e
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, exists := c.items[key]; exists {
		c.deleteEntry(e)
	}
}

// Clear removes all values from the cache.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry)
	c.lruList.Init()
}

// Size returns the current number of items in the cache.
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Capacity returns the maximum number of items the cache can hold.
func (c *MemoryCache) Capacity() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.capacity
}

// CleanExpired removes all expired items from the cache.
func (c *MemoryCache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for _, e := range c.items {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			c.deleteEntry(e)
			removed++
		}
	}
	return removed
}

// evictLRU removes the least recently used item.
// Must be called with c.mu held.
func (c *MemoryCache) evictLRU() {
	element := c.lruList.Back()
	if element != nil {
		c.deleteEntry(element.Value.(*entry))
	}
}

// deleteEntry removes an entry from the cache.
// Must be called with c.mu held.
func (c *MemoryCache) deleteEntry(e *entry) {
	delete(c.items, e.key)
	c.lruList.Remove(e.element)
}
