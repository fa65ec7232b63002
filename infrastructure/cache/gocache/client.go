// ABOUTME: In-process cache backed by patrickmn/go-cache
// ABOUTME: Sweeps expired entries with a background janitor

package gocache

import (
	"context"
	"time"

	"newsapi-connector/core/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

// Cache implements the Cache interface using go-cache
type Cache struct {
	cache *gocache.Cache
}

// NewCache creates a cache whose janitor runs every cleanupInterval.
// defaultExpiration is used only for entries stored with ttl 0.
func NewCache(defaultExpiration, cleanupInterval time.Duration) *Cache {
	return &Cache{cache: gocache.New(defaultExpiration, cleanupInterval)}
}

// Get retrieves a value from the cache
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, found := c.cache.Get(key)
	if !found {
		return nil, interfaces.ErrCacheMiss
	}

	stored, ok := val.([]byte)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	out := make([]byte, len(stored))
	copy(out, stored)
	return out, nil
}

// Set stores a copy of value with the given TTL
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	expiration := ttl
	if ttl == 0 {
		expiration = gocache.DefaultExpiration
	}
	c.cache.Set(key, stored, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.cache.Delete(key)
	return nil
}

// Count returns the number of entries, including expired ones not yet swept
func (c *Cache) Count() int {
	return c.cache.ItemCount()
}
