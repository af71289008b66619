package main

import (
	"context"
	"errors"
	"os"
	"time"

	"go.uber.org/zap"

	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
	"weather-api/pkg/log"
)

// Queries OpenWeather directly with the shared http client.
// Run with OPENWEATHER_API_KEY set.
func main() {
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENWEATHER_API_KEY is not set")
	}

	clientOptions := http.ClientOptions{
		FollowRedirect:     true,
		DefaultQueryParams: map[string]string{"appid": apiKey},
		ConnectionTimeout:  5 * time.Second,
		ReadTimeout:        10 * time.Second,
		Logger:             http.ZapHTTPLogger{Name: "example"},
	}
	dataClient := http.NewHttpClient("https://api.openweathermap.org/data/2.5", clientOptions)
	geoClient := http.NewHttpClient("https://api.openweathermap.org/geo/1.0", clientOptions)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Current weather with the builder
	var current external.CurrentWeatherResponse
	var apiErr external.APIErrorResponse
	_, errResp, status, err := dataClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/weather").
		WithQueryParams(map[string]string{"q": "London", "units": "metric"}).
		WithSuccessResp(&current).
		WithErrorResp(&apiErr).
		Execute()
	if err != nil {
		var statusErr *http.StatusError
		if errors.As(err, &statusErr) && errResp != nil {
			log.Error("current weather failed", zap.Int("status", status), zap.String("message", apiErr.Message))
		} else {
			log.Error("current weather failed", zap.Error(err))
		}
	} else {
		log.Info("current weather",
			zap.String("city", current.Name),
			zap.Float64("temp", current.Main.Temp),
			zap.Int("humidity", current.Main.Humidity))
	}

	// Geocoding with the shorthand
	var locations []external.GeoLocation
	if _, _, status, err = geoClient.Get(ctx, "/direct", map[string]string{"q": "Springfield", "limit": "5"}, &locations, nil); err != nil {
		log.Error("geocoding failed", zap.Int("status", status), zap.Error(err))
		return
	}
	for _, location := range locations {
		log.Info("location",
			zap.String("name", location.Name),
			zap.String("country", location.Country),
			zap.Float64("lat", location.Lat),
			zap.Float64("lon", location.Lon))
	}
}
