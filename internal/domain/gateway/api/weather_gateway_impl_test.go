package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"weather-api/internal/domain/model"
)

const testAPIKey = "test-key-123"

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, cacheName string, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[cacheName+"::"+key]
	return data, ok, nil
}

func (c *memoryCache) Set(_ context.Context, cacheName string, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheName+"::"+key] = value
	return nil
}

func newTestGateway(t *testing.T, handler http.HandlerFunc, cache ResponseCache, mutate ...func(*WeatherGatewayConfig)) (WeatherGateway, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := WeatherGatewayConfig{
		DataURL: server.URL + "/data/2.5",
		GeoURL:  server.URL + "/geo/1.0",
		APIKey:  testAPIKey,
		Timeout: 2 * time.Second,
	}
	for _, m := range mutate {
		m(&config)
	}
	return NewWeatherGateway(config, cache), server
}

func TestCurrentWeatherByCityPassesBodyThrough(t *testing.T) {
	body := `{"cod":200,"name":"London","main":{"temp":12.5}}`
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "London" || q.Get("units") != "metric" || q.Get("appid") != testAPIKey {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}, nil)

	result := gateway.CurrentWeatherByCity(context.Background(), "London", "metric")
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if string(result.Data) != body {
		t.Fatalf("body was not passed through unchanged: %s", result.Data)
	}
}

func TestProviderRedirectIsFollowed(t *testing.T) {
	body := `{"cod":200,"name":"Lisbon"}`
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/data/2.5/weather" {
			http.Redirect(w, r, "/data/3.0/weather?"+r.URL.RawQuery, http.StatusMovedPermanently)
			return
		}
		if r.URL.Query().Get("q") != "Lisbon" {
			t.Errorf("query was not carried over: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(body))
	}, nil)

	result := gateway.CurrentWeatherByCity(context.Background(), "Lisbon", "metric")
	if !result.Success || string(result.Data) != body {
		t.Fatalf("expected redirected body, got %+v", result)
	}
}

func TestFaultNormalization(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    model.FaultKind
		message string
	}{
		{"not found", http.StatusNotFound, `{"cod":"404","message":"city not found"}`, model.FaultNotFound, "Location not found"},
		{"unauthorized", http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key. Please see ..."}`, model.FaultUnauthorized, "Invalid API key"},
		{"server error with message", http.StatusInternalServerError, `{"cod":"500","message":"boom"}`, model.FaultUpstream, "API error: 500 Internal Server Error: boom"},
		{"rate limited without body", http.StatusTooManyRequests, ``, model.FaultUpstream, "API error: 429 Too Many Requests"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}, nil)

			result := gateway.ForecastByCity(context.Background(), "Atlantis", "metric")
			if result.Success {
				t.Fatal("expected failure")
			}
			if result.Error != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, result.Error)
			}
			if result.Kind != tc.kind || result.StatusCode != tc.status {
				t.Fatalf("expected %s/%d, got %s/%d", tc.kind, tc.status, result.Kind, result.StatusCode)
			}
		})
	}
}

func TestTimeoutIsReported(t *testing.T) {
	release := make(chan struct{})
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, nil, func(c *WeatherGatewayConfig) { c.Timeout = 50 * time.Millisecond })
	defer close(release)

	result := gateway.CurrentWeatherByCity(context.Background(), "Paris", "metric")
	if result.Success || result.Error != "Request timeout" || result.Kind != model.FaultTimeout {
		t.Fatalf("expected timeout, got %+v", result)
	}
}

func TestNetworkErrorDoesNotLeakAPIKey(t *testing.T) {
	gateway, server := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {}, nil)
	server.Close()

	result := gateway.CurrentWeatherByCoordinates(context.Background(), 51.5, -0.12, "metric")
	if result.Success || result.Kind != model.FaultNetwork {
		t.Fatalf("expected network fault, got %+v", result)
	}
	if !strings.HasPrefix(result.Error, "Network error: ") {
		t.Fatalf("unexpected message %q", result.Error)
	}
	if strings.Contains(result.Error, testAPIKey) || strings.Contains(result.Error, "http://") {
		t.Fatalf("message leaks request details: %q", result.Error)
	}
}

func TestInvalidBodyIsNetworkError(t *testing.T) {
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}, nil)

	result := gateway.AirPollution(context.Background(), 1, 2)
	if result.Success || !strings.HasPrefix(result.Error, "Network error: ") {
		t.Fatalf("expected network error, got %+v", result)
	}
}

func TestDirectGeocodeSendsLimit(t *testing.T) {
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geo/1.0/direct" || r.URL.Query().Get("limit") != "3" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		_, _ = w.Write([]byte(`[]`))
	}, nil)

	if result := gateway.DirectGeocode(context.Background(), "Spring", 3); !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
}

func TestCachedSuccessSkipsUpstream(t *testing.T) {
	var calls int32
	cache := newMemoryCache()
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"cod":200}`))
	}, cache)

	ctx := context.Background()
	first := gateway.CurrentWeatherByCity(ctx, "Oslo", "metric")
	second := gateway.CurrentWeatherByCity(ctx, "Oslo", "metric")
	if !first.Success || !second.Success || string(second.Data) != `{"cod":200}` {
		t.Fatalf("unexpected results %+v %+v", first, second)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected one upstream call, got %d", got)
	}
	for key := range cache.entries {
		if strings.Contains(key, testAPIKey) {
			t.Fatalf("cache key contains the API key: %s", key)
		}
	}

	gateway.CurrentWeatherByCity(ctx, "Oslo", "imperial")
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("different params must miss the cache, got %d calls", got)
	}
}

func TestRefreshBypassesCachedBodyAndRewritesIt(t *testing.T) {
	var calls int32
	cache := newMemoryCache()
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"cod":200,"run":` + strconv.Itoa(int(n)) + `}`))
	}, cache)

	ctx := context.Background()
	gateway.CurrentWeatherByCity(ctx, "Oslo", "metric")
	refreshed := gateway.CurrentWeatherByCity(WithRefresh(ctx), "Oslo", "metric")
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected refresh to reach upstream, got %d calls", got)
	}
	if string(refreshed.Data) != `{"cod":200,"run":2}` {
		t.Fatalf("expected the fresh body, got %s", refreshed.Data)
	}

	cached := gateway.CurrentWeatherByCity(ctx, "Oslo", "metric")
	if string(cached.Data) != `{"cod":200,"run":2}` || atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected the refreshed body to be cached, got %s after %d calls", cached.Data, calls)
	}
}

func TestFailuresAreNotCached(t *testing.T) {
	var calls int32
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}, newMemoryCache())

	gateway.CurrentWeatherByCity(context.Background(), "Nowhere", "metric")
	gateway.CurrentWeatherByCity(context.Background(), "Nowhere", "metric")
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected failures to reach upstream each time, got %d", got)
	}
}

func TestBreakerOpensOnServerErrors(t *testing.T) {
	var calls int32
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}, nil, func(c *WeatherGatewayConfig) {
		c.BreakerFailures = 2
		c.BreakerOpenTimeout = time.Minute
	})

	ctx := context.Background()
	gateway.ForecastByCity(ctx, "Rome", "metric")
	gateway.ForecastByCity(ctx, "Rome", "metric")
	result := gateway.ForecastByCity(ctx, "Rome", "metric")

	if result.Kind != model.FaultNetwork || result.Error != "Network error: circuit breaker is open" {
		t.Fatalf("expected open breaker, got %+v", result)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected the open breaker to short circuit, got %d calls", got)
	}
}

func TestBreakerIgnoresClientErrors(t *testing.T) {
	var calls int32
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}, nil, func(c *WeatherGatewayConfig) { c.BreakerFailures = 1 })

	for i := 0; i < 3; i++ {
		if result := gateway.CurrentWeatherByCity(context.Background(), "Nowhere", "metric"); result.Kind != model.FaultNotFound {
			t.Fatalf("expected not found, got %+v", result)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("expected every call to reach upstream, got %d", got)
	}
}
