package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/display"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/util/numberutils"
)

type WeatherController struct {
	api            *echo.Group
	useCase        weather.UseCase
	displayUseCase display.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, displayUseCase display.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, displayUseCase: displayUseCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/api/weather/current/:city", controller.CurrentByCity)
	controller.api.GET("/api/weather/coordinates", controller.CurrentByCoordinates)
	controller.api.GET("/api/weather/forecast/:city", controller.ForecastByCity)
	controller.api.GET("/api/weather/forecast/:city/daily", controller.DailyForecastByCity)
	controller.api.GET("/api/weather/search/:query", controller.SearchLocations)
	controller.api.GET("/api/weather/air-quality/:city", controller.AirQualityByCity)
	controller.api.GET("/api/weather/display/:city", controller.DisplayByCity)
}

// CurrentByCity godoc
// @Summary Current weather by city
// @Description Current weather for a city name, provider body passed through
// @Tags weather
// @Produce json
// @Param city path string true "City name" example(London)
// @Param units query string false "Temperature units" Enums(metric, imperial) default(metric)
// @Success 200 {object} map[string]interface{} "Provider current weather"
// @Failure 404 {object} middleware.ErrorResponse "Location not found or upstream failure"
// @Failure 422 {object} middleware.ErrorResponse "Invalid query"
// @Router /api/weather/current/{city} [get]
func (controller *WeatherController) CurrentByCity(c echo.Context) error {
	query := model.NewCityQuery(pathParam(c, "city"), c.QueryParam("units"))
	result := controller.useCase.CurrentByCity(c.Request().Context(), query)
	return respond(c, result, http.StatusNotFound)
}

// CurrentByCoordinates godoc
// @Summary Current weather by coordinates
// @Description Current weather at a latitude and longitude, provider body passed through
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude (-90 to 90)"
// @Param lon query number true "Longitude (-180 to 180)"
// @Param units query string false "Temperature units" Enums(metric, imperial) default(metric)
// @Success 200 {object} map[string]interface{} "Provider current weather"
// @Failure 400 {object} middleware.ErrorResponse "Upstream failure"
// @Failure 422 {object} middleware.ErrorResponse "Invalid query"
// @Router /api/weather/coordinates [get]
func (controller *WeatherController) CurrentByCoordinates(c echo.Context) error {
	lat, err := numberutils.ToFloat64Ptr(c.QueryParam("lat"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "lat must be a number")
	}
	lon, err := numberutils.ToFloat64Ptr(c.QueryParam("lon"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "lon must be a number")
	}

	query := model.NewCoordinatesQuery(lat, lon, c.QueryParam("units"))
	result := controller.useCase.CurrentByCoordinates(c.Request().Context(), query)
	return respond(c, result, http.StatusBadRequest)
}

// ForecastByCity godoc
// @Summary 5 day forecast by city
// @Description 5 day / 3 hour forecast for a city name, provider body passed through
// @Tags weather
// @Produce json
// @Param city path string true "City name" example(London)
// @Param units query string false "Temperature units" Enums(metric, imperial) default(metric)
// @Success 200 {object} map[string]interface{} "Provider forecast"
// @Failure 404 {object} middleware.ErrorResponse "Location not found or upstream failure"
// @Failure 422 {object} middleware.ErrorResponse "Invalid query"
// @Router /api/weather/forecast/{city} [get]
func (controller *WeatherController) ForecastByCity(c echo.Context) error {
	query := model.NewCityQuery(pathParam(c, "city"), c.QueryParam("units"))
	result := controller.useCase.ForecastByCity(c.Request().Context(), query)
	return respond(c, result, http.StatusNotFound)
}

// DailyForecastByCity godoc
// @Summary Daily forecast by city
// @Description Forecast grouped by local calendar day with min and max temperatures, up to 5 days
// @Tags weather
// @Produce json
// @Param city path string true "City name" example(London)
// @Param units query string false "Temperature units" Enums(metric, imperial) default(metric)
// @Success 200 {array} model.DailyForecast
// @Failure 404 {object} middleware.ErrorResponse "Location not found or upstream failure"
// @Failure 422 {object} middleware.ErrorResponse "Invalid query"
// @Router /api/weather/forecast/{city}/daily [get]
func (controller *WeatherController) DailyForecastByCity(c echo.Context) error {
	query := model.NewCityQuery(pathParam(c, "city"), c.QueryParam("units"))
	days, result := controller.useCase.DailyForecastByCity(c.Request().Context(), query)
	if !result.Success {
		return failure(result, http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, days)
}

// SearchLocations godoc
// @Summary Search locations
// @Description Free text location search for autocomplete
// @Tags weather
// @Produce json
// @Param query path string true "Search text" example(Lon)
// @Param limit query int false "Maximum number of results (1-10)" default(5)
// @Success 200 {array} model.LocationResult
// @Failure 400 {object} middleware.ErrorResponse "Upstream failure"
// @Failure 422 {object} middleware.ErrorResponse "Invalid query"
// @Router /api/weather/search/{query} [get]
func (controller *WeatherController) SearchLocations(c echo.Context) error {
	limit, err := numberutils.ToIntPtr(c.QueryParam("limit"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "limit must be an integer")
	}

	query := model.NewSearchQuery(pathParam(c, "query"), limit)
	locations, result := controller.useCase.SearchLocations(c.Request().Context(), query)
	if !result.Success {
		return failure(result, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, locations)
}

// AirQualityByCity godoc
// @Summary Air quality by city
// @Description Geocodes the city and returns provider air pollution data at its coordinates
// @Tags weather
// @Produce json
// @Param city path string true "City name" example(Paris)
// @Success 200 {object} map[string]interface{} "Provider air pollution"
// @Failure 400 {object} middleware.ErrorResponse "Upstream failure"
// @Failure 404 {object} middleware.ErrorResponse "Location not found"
// @Failure 422 {object} middleware.ErrorResponse "Invalid query"
// @Router /api/weather/air-quality/{city} [get]
func (controller *WeatherController) AirQualityByCity(c echo.Context) error {
	result := controller.useCase.AirQualityByCity(c.Request().Context(), pathParam(c, "city"))
	if result.Kind == model.FaultUnresolvedLocation {
		return echo.NewHTTPError(http.StatusNotFound, result.Error)
	}
	return respond(c, result, http.StatusBadRequest)
}

// DisplayByCity godoc
// @Summary Weather panel for a city
// @Description Temperature in Fahrenheit, a condition emoji and the description, or a readable error
// @Tags weather
// @Produce json
// @Param city path string true "City name" example(London)
// @Success 200 {object} model.Display
// @Failure 400 {object} model.Display
// @Failure 404 {object} model.Display
// @Failure 502 {object} model.Display
// @Failure 504 {object} model.Display
// @Router /api/weather/display/{city} [get]
func (controller *WeatherController) DisplayByCity(c echo.Context) error {
	result := controller.displayUseCase.DisplayByCity(c.Request().Context(), pathParam(c, "city"))
	if result.Failed() {
		return c.JSON(result.StatusCode, result)
	}
	return c.JSON(http.StatusOK, result)
}

// respond writes the provider body unchanged, or turns the failure into an HTTP error
func respond(c echo.Context, result model.Result, failureStatus int) error {
	if !result.Success {
		return failure(result, failureStatus)
	}
	return c.JSONBlob(http.StatusOK, result.Data)
}

func failure(result model.Result, failureStatus int) error {
	if result.Kind == model.FaultInvalidQuery {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, result.Error)
	}
	return echo.NewHTTPError(failureStatus, result.Error)
}
