// ABOUTME: In-memory cache implementation using sync.Map for thread-safe operations
// ABOUTME: Expires entries lazily on lookup against an injectable clock

package memory

import (
	"context"
	"sync"
	"time"

	"newsapi-connector/core/interfaces"
)

// item represents a cached item with expiration
type item struct {
	value      []byte
	expiration time.Time
	noExpire   bool
}

// expired reports whether the item is no longer servable at now.
// An item stored at T with ttl S expires at exactly T+S.
func (i *item) expired(now time.Time) bool {
	return !i.noExpire && !now.Before(i.expiration)
}

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items   sync.Map
	now     func() time.Time
	sweepMu sync.Mutex
}

// Option configures a MemoryCache
type Option func(*MemoryCache)

// WithClock replaces time.Now, letting tests move time forward
func WithClock(now func() time.Time) Option {
	return func(c *MemoryCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache(opts ...Option) *MemoryCache {
	c := &MemoryCache{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.items.Load(key)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	it := value.(*item)

	if it.expired(c.now()) {
		c.items.CompareAndDelete(key, value)
		go c.cleanup()
		return nil, interfaces.ErrCacheMiss
	}

	// Return a copy of the value
	result := make([]byte, len(it.value))
	copy(result, it.value)
	return result, nil
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	newItem := &item{
		value:    valueCopy,
		noExpire: ttl == 0,
	}
	if ttl > 0 {
		newItem.expiration = c.now().Add(ttl)
	}

	c.items.Store(key, newItem)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.items.Delete(key)
	return nil
}

// Len counts entries, including expired ones not yet swept
func (c *MemoryCache) Len() int {
	n := 0
	c.items.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// cleanup removes expired items from the cache
func (c *MemoryCache) cleanup() {
	if !c.sweepMu.TryLock() {
		return
	}
	defer c.sweepMu.Unlock()

	now := c.now()
	c.items.Range(func(key, value interface{}) bool {
		if value.(*item).expired(now) {
			c.items.CompareAndDelete(key, value)
		}
		return true
	})
}
