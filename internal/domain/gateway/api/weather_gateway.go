package api

import (
	"context"

	"weather-api/internal/domain/model"
)

// WeatherGateway defines the upstream weather provider calls.
// Every call returns a normalized result; faults never surface as Go errors.
type WeatherGateway interface {
	// CurrentWeatherByCity gets the current weather for a city name
	CurrentWeatherByCity(ctx context.Context, city string, units string) model.Result

	// CurrentWeatherByCoordinates gets the current weather at a latitude and longitude
	CurrentWeatherByCoordinates(ctx context.Context, lat float64, lon float64, units string) model.Result

	// ForecastByCity gets the 5 day / 3 hour forecast for a city name
	ForecastByCity(ctx context.Context, city string, units string) model.Result

	// DirectGeocode resolves free text into at most limit locations
	DirectGeocode(ctx context.Context, query string, limit int) model.Result

	// AirPollution gets the air quality at a latitude and longitude
	AirPollution(ctx context.Context, lat float64, lon float64) model.Result
}

type refreshKey struct{}

// WithRefresh marks calls made with the returned context to bypass cached bodies.
// The upstream reply is still written back, so the entry gets a fresh TTL.
func WithRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshKey{}, true)
}

// IsRefresh reports whether ctx was marked by WithRefresh
func IsRefresh(ctx context.Context) bool {
	refresh, _ := ctx.Value(refreshKey{}).(bool)
	return refresh
}

// ResponseCache stores successful upstream bodies per cache name
type ResponseCache interface {
	Get(ctx context.Context, cacheName string, key string) ([]byte, bool, error)
	Set(ctx context.Context, cacheName string, key string, value []byte) error
}
