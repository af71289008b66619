package weather

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

const airQualityGeocodeLimit = 1

type weatherUseCase struct {
	gateway  api.WeatherGateway
	validate *validator.Validate
}

func NewWeatherUseCase(gateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		gateway:  gateway,
		validate: newValidator(),
	}
}

func (uc *weatherUseCase) CurrentByCity(ctx context.Context, query model.CityQuery) model.Result {
	if result, ok := uc.check(query); !ok {
		return result
	}
	return uc.gateway.CurrentWeatherByCity(ctx, query.City, query.Units)
}

func (uc *weatherUseCase) CurrentByCoordinates(ctx context.Context, query model.CoordinatesQuery) model.Result {
	if result, ok := uc.check(query); !ok {
		return result
	}
	return uc.gateway.CurrentWeatherByCoordinates(ctx, *query.Lat, *query.Lon, query.Units)
}

func (uc *weatherUseCase) ForecastByCity(ctx context.Context, query model.CityQuery) model.Result {
	if result, ok := uc.check(query); !ok {
		return result
	}
	return uc.gateway.ForecastByCity(ctx, query.City, query.Units)
}

func (uc *weatherUseCase) DailyForecastByCity(ctx context.Context, query model.CityQuery) ([]model.DailyForecast, model.Result) {
	result := uc.ForecastByCity(ctx, query)
	if !result.Success {
		return nil, result
	}

	var forecast external.ForecastResponse
	if err := result.Decode(&forecast); err != nil {
		return nil, model.Fail(model.FaultNetwork, result.StatusCode, "Network error: "+err.Error())
	}
	return SummarizeDaily(forecast, maxForecastDays), result
}

func (uc *weatherUseCase) SearchLocations(ctx context.Context, query model.SearchQuery) ([]model.LocationResult, model.Result) {
	if result, ok := uc.check(query); !ok {
		return nil, result
	}

	result := uc.gateway.DirectGeocode(ctx, query.Query, query.Limit)
	if !result.Success {
		return nil, result
	}

	var geo []external.GeoLocation
	if err := result.Decode(&geo); err != nil {
		return nil, model.Fail(model.FaultNetwork, result.StatusCode, "Network error: "+err.Error())
	}

	locations := make([]model.LocationResult, 0, len(geo))
	for _, g := range geo {
		locations = append(locations, model.LocationResult{
			Name:    g.Name,
			Country: g.Country,
			State:   g.State,
			Lat:     g.Lat,
			Lon:     g.Lon,
		})
	}
	return locations, result
}

func (uc *weatherUseCase) AirQualityByCity(ctx context.Context, city string) model.Result {
	query := model.NewCityQuery(city, model.UnitsMetric)
	if result, ok := uc.check(query); !ok {
		return result
	}

	geoResult := uc.gateway.DirectGeocode(ctx, query.City, airQualityGeocodeLimit)
	if !geoResult.Success {
		log.Info(msg.GetMessage("weather.air-quality.unresolved", query.City, geoResult.Error),
			zap.String("city", query.City))
		return model.Fail(model.FaultUnresolvedLocation, geoResult.StatusCode, "Location not found")
	}

	var geo []external.GeoLocation
	if err := geoResult.Decode(&geo); err != nil || len(geo) == 0 {
		log.Info(msg.GetMessage("weather.air-quality.unresolved", query.City, "no geocoding match"),
			zap.String("city", query.City))
		return model.Fail(model.FaultUnresolvedLocation, 0, "Location not found")
	}

	return uc.gateway.AirPollution(ctx, geo[0].Lat, geo[0].Lon)
}

// check validates the query and returns the failed result when it is rejected
func (uc *weatherUseCase) check(query any) (model.Result, bool) {
	if err := uc.validate.Struct(query); err != nil {
		return model.Fail(model.FaultInvalidQuery, 0, validationMessage(err)), false
	}
	return model.Result{}, true
}
