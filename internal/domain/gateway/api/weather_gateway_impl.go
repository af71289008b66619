package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	nethttp "net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

const (
	CacheCurrent    = "current"
	CacheForecast   = "forecast"
	CacheGeocoding  = "geocoding"
	CacheAirQuality = "air-quality"

	errLocationNotFound = "Location not found"
	errInvalidAPIKey    = "Invalid API key"
	errRequestTimeout   = "Request timeout"
)

// WeatherGatewayConfig holds the provider endpoints and the outbound protection settings
type WeatherGatewayConfig struct {
	DataURL string
	GeoURL  string
	APIKey  string
	Timeout time.Duration

	// RateLimit is the sustained number of outbound calls per second, 0 disables the limiter
	RateLimit float64
	RateBurst int

	// BreakerFailures consecutive failures open the breaker for BreakerOpenTimeout
	BreakerFailures    uint32
	BreakerOpenTimeout time.Duration
}

type endpoint struct {
	client    *http.Client
	path      string
	cacheName string
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	current    endpoint
	forecast   endpoint
	geocoding  endpoint
	airQuality endpoint
	timeout    time.Duration
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	cache      ResponseCache
}

var _ WeatherGateway = (*weatherGatewayImpl)(nil)

// NewWeatherGateway creates a new instance of WeatherGateway. cache may be nil.
func NewWeatherGateway(config WeatherGatewayConfig, cache ResponseCache) WeatherGateway {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.BreakerFailures == 0 {
		config.BreakerFailures = 5
	}
	if config.BreakerOpenTimeout <= 0 {
		config.BreakerOpenTimeout = 30 * time.Second
	}

	clientOptions := http.ClientOptions{
		FollowRedirect:     true,
		DefaultQueryParams: map[string]string{"appid": config.APIKey},
		ReadTimeout:        config.Timeout,
		ConnectionTimeout:  config.Timeout,
	}
	dataOptions := clientOptions
	dataOptions.Logger = http.ZapHTTPLogger{Name: "openweather-data"}
	geoOptions := clientOptions
	geoOptions.Logger = http.ZapHTTPLogger{Name: "openweather-geo"}

	dataClient := http.NewHttpClient(config.DataURL, dataOptions)
	geoClient := http.NewHttpClient(config.GeoURL, geoOptions)

	limiter := rate.NewLimiter(rate.Inf, 0)
	if config.RateLimit > 0 {
		burst := config.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), burst)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 1,
		Timeout:     config.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.BreakerFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn(msg.GetMessage("weather.breaker.state-change", name, from, to),
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &weatherGatewayImpl{
		current:    endpoint{client: dataClient, path: "/weather", cacheName: CacheCurrent},
		forecast:   endpoint{client: dataClient, path: "/forecast", cacheName: CacheForecast},
		geocoding:  endpoint{client: geoClient, path: "/direct", cacheName: CacheGeocoding},
		airQuality: endpoint{client: dataClient, path: "/air_pollution", cacheName: CacheAirQuality},
		timeout:    config.Timeout,
		limiter:    limiter,
		breaker:    breaker,
		cache:      cache,
	}
}

// CurrentWeatherByCity gets the current weather for a city name
func (w *weatherGatewayImpl) CurrentWeatherByCity(ctx context.Context, city string, units string) model.Result {
	return w.fetch(ctx, w.current, map[string]string{"q": city, "units": units})
}

// CurrentWeatherByCoordinates gets the current weather at a latitude and longitude
func (w *weatherGatewayImpl) CurrentWeatherByCoordinates(ctx context.Context, lat float64, lon float64, units string) model.Result {
	return w.fetch(ctx, w.current, map[string]string{
		"lat":   formatCoordinate(lat),
		"lon":   formatCoordinate(lon),
		"units": units,
	})
}

// ForecastByCity gets the 5 day / 3 hour forecast for a city name
func (w *weatherGatewayImpl) ForecastByCity(ctx context.Context, city string, units string) model.Result {
	return w.fetch(ctx, w.forecast, map[string]string{"q": city, "units": units})
}

// DirectGeocode resolves free text into at most limit locations
func (w *weatherGatewayImpl) DirectGeocode(ctx context.Context, query string, limit int) model.Result {
	return w.fetch(ctx, w.geocoding, map[string]string{"q": query, "limit": strconv.Itoa(limit)})
}

// AirPollution gets the air quality at a latitude and longitude
func (w *weatherGatewayImpl) AirPollution(ctx context.Context, lat float64, lon float64) model.Result {
	return w.fetch(ctx, w.airQuality, map[string]string{
		"lat": formatCoordinate(lat),
		"lon": formatCoordinate(lon),
	})
}

type outcome struct {
	body      json.RawMessage
	errorBody *external.APIErrorResponse
	status    int
	err       error
}

// fetch is the single request path shared by every call: cache, rate limit, breaker, one GET, normalize.
func (w *weatherGatewayImpl) fetch(ctx context.Context, ep endpoint, params map[string]string) model.Result {
	key := cacheKey(ep.path, params)

	if w.cache != nil && !IsRefresh(ctx) {
		data, found, err := w.cache.Get(ctx, ep.cacheName, key)
		if err != nil {
			log.Warn(msg.GetMessage("weather.cache.read-failed", key, err), zap.Error(err))
		} else if found {
			log.Debug(msg.GetMessage("weather.cache.hit", key))
			return model.Ok(data)
		}
	}

	if err := w.limiter.Wait(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return model.Fail(model.FaultNetwork, 0, "Network error: "+err.Error())
		}
		return model.Fail(model.FaultTimeout, 0, errRequestTimeout)
	}

	reqCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	res, err := w.breaker.Execute(func() (interface{}, error) {
		success, failure, status, err := ep.client.Request().
			WithContext(reqCtx).
			WithMethod(http.GET).
			WithPath(ep.path).
			WithQueryParams(params).
			WithSuccessResp(&json.RawMessage{}).
			WithErrorResp(&external.APIErrorResponse{}).
			Execute()

		out := &outcome{status: status, err: err}
		if err == nil {
			out.body = *success.(*json.RawMessage)
		}
		if failure != nil {
			out.errorBody = failure.(*external.APIErrorResponse)
		}

		// client side faults say nothing about provider health
		var statusErr *http.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < nethttp.StatusInternalServerError {
			return out, nil
		}
		return out, err
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return model.Fail(model.FaultNetwork, 0, "Network error: "+err.Error())
	}

	out := res.(*outcome)
	if out.err != nil {
		return normalizeFault(out)
	}

	if w.cache != nil {
		if err := w.cache.Set(ctx, ep.cacheName, key, out.body); err != nil {
			log.Warn(msg.GetMessage("weather.cache.write-failed", key, err), zap.Error(err))
		}
	}

	return model.Ok(out.body)
}

func normalizeFault(out *outcome) model.Result {
	var statusErr *http.StatusError
	if errors.As(out.err, &statusErr) {
		switch statusErr.StatusCode {
		case nethttp.StatusNotFound:
			return model.Fail(model.FaultNotFound, statusErr.StatusCode, errLocationNotFound)
		case nethttp.StatusUnauthorized:
			return model.Fail(model.FaultUnauthorized, statusErr.StatusCode, errInvalidAPIKey)
		}
		return model.Fail(model.FaultUpstream, statusErr.StatusCode, apiErrorMessage(statusErr.StatusCode, out.errorBody))
	}

	if isTimeout(out.err) {
		return model.Fail(model.FaultTimeout, 0, errRequestTimeout)
	}

	return model.Fail(model.FaultNetwork, out.status, "Network error: "+networkMessage(out.err))
}

func apiErrorMessage(status int, body *external.APIErrorResponse) string {
	message := fmt.Sprintf("API error: %d %s", status, nethttp.StatusText(status))
	if body != nil && body.Message != "" {
		message += ": " + body.Message
	}
	return message
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// networkMessage drops the request URL so query params never reach the client
func networkMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}

func cacheKey(path string, params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return path + "?" + values.Encode()
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
