package redis

import (
	"context"
	"time"
)

// Cache stores raw payloads under CacheName::key with a TTL resolved from the client config
type Cache struct {
	client    *Client
	cacheName string
}

// NewCache creates a new cache instance
func NewCache(client *Client, cacheName string) *Cache {
	return &Cache{
		client:    client,
		cacheName: cacheName,
	}
}

// Name returns the cache name used for key prefixing and TTL lookup
func (c *Cache) Name() string {
	return c.cacheName
}

// TTL returns the configured TTL for this cache, falling back to the client default
func (c *Cache) TTL() time.Duration {
	return c.client.config.TTLFor(c.cacheName)
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.cacheName != "" {
		return c.cacheName + "::" + key
	}
	return key
}

// Get returns the cached payload and whether it was present
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.client.Lookup(ctx, c.buildCacheKey(key))
}

// Set stores the payload with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, c.buildCacheKey(key), value, c.TTL())
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}

// Clear removes every key of this cache
func (c *Cache) Clear(ctx context.Context) (int, error) {
	pattern := c.buildCacheKey("*")
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100)
		if err != nil {
			return removed, err
		}
		if len(keys) > 0 {
			if err := c.client.Delete(ctx, keys...); err != nil {
				return removed, err
			}
			removed += len(keys)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}

// GetTTL returns the remaining time to live of a key
func (c *Cache) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return c.client.TTL(ctx, c.buildCacheKey(key))
}
