package cache

import (
	"context"
	"fmt"

	"weather-api/internal/domain/gateway/api"
	"weather-api/pkg/redis"
)

// RedisResponseCache keeps one redis cache per provider endpoint
type RedisResponseCache struct {
	caches map[string]*redis.Cache
}

var _ api.ResponseCache = (*RedisResponseCache)(nil)

func NewRedisResponseCache(client *redis.Client, cacheNames ...string) *RedisResponseCache {
	caches := make(map[string]*redis.Cache, len(cacheNames))
	for _, name := range cacheNames {
		caches[name] = redis.NewCache(client, name)
	}
	return &RedisResponseCache{caches: caches}
}

func (c *RedisResponseCache) Get(ctx context.Context, cacheName string, key string) ([]byte, bool, error) {
	cache, err := c.cache(cacheName)
	if err != nil {
		return nil, false, err
	}
	return cache.Get(ctx, key)
}

func (c *RedisResponseCache) Set(ctx context.Context, cacheName string, key string, value []byte) error {
	cache, err := c.cache(cacheName)
	if err != nil {
		return err
	}
	return cache.Set(ctx, key, value)
}

func (c *RedisResponseCache) cache(name string) (*redis.Cache, error) {
	cache, ok := c.caches[name]
	if !ok {
		return nil, fmt.Errorf("unknown cache %q", name)
	}
	return cache, nil
}
