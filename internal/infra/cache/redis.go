package cache

import (
	"context"
	"fmt"
	"time"

	"weather-api/internal/domain/gateway/api"
	"weather-api/pkg/redis"
	"weather-api/pkg/resource"
)

// Open builds the redis client from the app.cache properties and checks the connection
func Open(ctx context.Context) (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.cache.host", "localhost")).
		WithPort(resource.GetInt("app.cache.port")).
		WithPassword(resource.GetString("app.cache.password")).
		WithDatabase(resource.GetInt("app.cache.database")).
		WithPoolSize(resource.GetInt("app.cache.pool-size")).
		WithDefaultCacheTTL(resource.GetDurationOrDefault("app.cache.ttl.default", 10*time.Minute))

	for _, name := range []string{api.CacheCurrent, api.CacheForecast, api.CacheGeocoding, api.CacheAirQuality} {
		if ttl := resource.GetDuration("app.cache.ttl." + name); ttl > 0 {
			config.WithCacheTTL(name, ttl)
		}
	}

	client, err := redis.NewClient(config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, config.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("fail to connect cache at %s: %w", config.Addr(), err)
	}
	return client, nil
}
