package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"weather-api/pkg/redis"
)

func main() {
	fmt.Println("Testing Redis Package...")
	ctx := context.Background()

	// =============================================================================
	// CONFIGURATION
	// =============================================================================
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("CONFIGURATION")
	fmt.Println(strings.Repeat("=", 60))

	config := redis.NewRedisConfig().
		WithHost("localhost").
		WithPort(6379).
		WithDefaultCacheTTL(time.Minute).
		WithCacheTTL("current", 10*time.Minute).
		WithCacheTTL("geocoding", 24*time.Hour)

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	defer client.Close()

	status, details := client.Health(ctx)
	fmt.Printf("✓ Health: %s %v\n", status, details)
	if status != redis.StatusUp {
		return
	}

	// =============================================================================
	// CACHE
	// =============================================================================
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("CACHE")
	fmt.Println(strings.Repeat("=", 60))

	current := redis.NewCache(client, "current")
	forecast := redis.NewCache(client, "forecast")
	key := "/weather?q=London&units=metric"

	if _, found, err := current.Get(ctx, key); err != nil {
		log.Printf("Get failed: %v", err)
	} else if !found {
		fmt.Println("✓ Miss before the first write")
	}

	if err := current.Set(ctx, key, []byte(`{"name":"London","main":{"temp":14.2}}`)); err != nil {
		log.Printf("Set failed: %v", err)
	}
	if data, found, _ := current.Get(ctx, key); found {
		fmt.Printf("✓ Hit: %s\n", data)
	}
	if ttl, err := current.GetTTL(ctx, key); err == nil {
		fmt.Printf("✓ %s TTL %v (configured %v)\n", current.Name(), ttl.Round(time.Second), current.TTL())
	}
	fmt.Printf("✓ %s falls back to the default TTL %v\n", forecast.Name(), forecast.TTL())

	_ = forecast.Set(ctx, "/forecast?q=London&units=metric", []byte(`{"list":[]}`))
	removed, err := current.Clear(ctx)
	if err != nil {
		log.Printf("Clear failed: %v", err)
	}
	fmt.Printf("✓ Cleared %d keys from %s, forecast untouched\n", removed, current.Name())
	_, _ = forecast.Clear(ctx)

	// =============================================================================
	// DISTRIBUTED LOCK
	// =============================================================================
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("DISTRIBUTED LOCK")
	fmt.Println(strings.Repeat("=", 60))

	opts := redis.DefaultLockOptions().
		WithTTL(30 * time.Second).
		WithLockNamespace("weather_schedules")

	var wg sync.WaitGroup
	for replica := 1; replica <= 3; replica++ {
		wg.Add(1)
		go func(replica int) {
			defer wg.Done()
			err := redis.LockWithFunc(ctx, client, "weather_warmup", opts, func() error {
				fmt.Printf("✓ Replica %d runs the warm-up\n", replica)
				time.Sleep(500 * time.Millisecond)
				return nil
			})
			if errors.Is(err, redis.ErrLockHeld) {
				fmt.Printf("✓ Replica %d skipped, lock held\n", replica)
			} else if err != nil {
				log.Printf("Replica %d failed: %v", replica, err)
			}
		}(replica)
	}
	wg.Wait()

	fmt.Println("\nRedis package examples finished")
}
