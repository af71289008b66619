package weather

import (
	"context"

	"weather-api/internal/domain/model"
)

type UseCase interface {
	// CurrentByCity validates the query and returns the current weather for a city
	CurrentByCity(ctx context.Context, query model.CityQuery) model.Result

	// CurrentByCoordinates validates the query and returns the current weather at a point
	CurrentByCoordinates(ctx context.Context, query model.CoordinatesQuery) model.Result

	// ForecastByCity validates the query and returns the 5 day / 3 hour forecast for a city
	ForecastByCity(ctx context.Context, query model.CityQuery) model.Result

	// DailyForecastByCity summarizes the forecast into at most 5 days. The slice is nil when the result failed.
	DailyForecastByCity(ctx context.Context, query model.CityQuery) ([]model.DailyForecast, model.Result)

	// SearchLocations resolves free text into locations. The slice is nil when the result failed.
	SearchLocations(ctx context.Context, query model.SearchQuery) ([]model.LocationResult, model.Result)

	// AirQualityByCity geocodes the city and then looks up air pollution at its coordinates
	AirQualityByCity(ctx context.Context, city string) model.Result
}
