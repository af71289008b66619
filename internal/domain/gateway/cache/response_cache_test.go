package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/pkg/redis"
)

func newRedisClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, _ := strconv.Atoi(mr.Port())

	client, err := redis.NewClient(redis.NewRedisConfig().
		WithHost(mr.Host()).
		WithPort(port).
		WithCacheTTL(api.CacheCurrent, 5*time.Minute))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestResponseCacheRoundTrip(t *testing.T) {
	client, mr := newRedisClient(t)
	cache := NewRedisResponseCache(client, api.CacheCurrent, api.CacheForecast)
	ctx := context.Background()

	if err := cache.Set(ctx, api.CacheCurrent, "/weather?q=Oslo", []byte(`{"cod":200}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	data, found, err := cache.Get(ctx, api.CacheCurrent, "/weather?q=Oslo")
	if err != nil || !found || string(data) != `{"cod":200}` {
		t.Fatalf("unexpected lookup %s %v %v", data, found, err)
	}
	if ttl := mr.TTL("current::/weather?q=Oslo"); ttl != 5*time.Minute {
		t.Fatalf("expected endpoint TTL, got %v", ttl)
	}
	if _, found, _ := cache.Get(ctx, api.CacheForecast, "/weather?q=Oslo"); found {
		t.Fatal("caches must not share entries")
	}
}

func TestResponseCacheUnknownName(t *testing.T) {
	client, _ := newRedisClient(t)
	cache := NewRedisResponseCache(client, api.CacheCurrent)
	if err := cache.Set(context.Background(), "nope", "k", []byte("v")); err == nil {
		t.Fatal("expected error for unknown cache")
	}
}

func TestRedisHealthGateway(t *testing.T) {
	client, mr := newRedisClient(t)
	gateway := NewRedisHealthGateway(client)

	if status := gateway.Health(context.Background()); status.Status != model.StatusUp {
		t.Fatalf("expected UP, got %+v", status)
	}
	mr.Close()
	if status := gateway.Health(context.Background()); status.Status != model.StatusDown {
		t.Fatalf("expected DOWN, got %+v", status)
	}
}
