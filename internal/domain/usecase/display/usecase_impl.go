package display

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

type displayUseCase struct {
	gateway api.WeatherGateway
}

func NewDisplayUseCase(gateway api.WeatherGateway) UseCase {
	return &displayUseCase{gateway: gateway}
}

func (uc *displayUseCase) DisplayByCity(ctx context.Context, city string) model.Display {
	city = strings.TrimSpace(city)
	if city == "" {
		return failed(city, http.StatusBadRequest, StatusMessage(http.StatusBadRequest, ""))
	}

	// kelvin readings, converted locally
	result := uc.gateway.CurrentWeatherByCity(ctx, city, model.UnitsStandard)
	if !result.Success {
		log.Info(msg.GetMessage("display.fault", city, result.Error), zap.String("city", city))
		return fault(city, result)
	}

	var weather external.CurrentWeatherResponse
	if err := result.Decode(&weather); err != nil {
		return failed(city, http.StatusBadGateway, StatusMessage(http.StatusBadGateway, err.Error()))
	}

	if cod := weather.StatusCode(); cod != http.StatusOK {
		return failed(city, statusOrBadGateway(cod), StatusMessage(cod, fmt.Sprintf("unexpected status %d", cod)))
	}

	display := model.Display{
		City:        city,
		Temperature: FormatFahrenheit(weather.Main.Temp),
		StatusCode:  http.StatusOK,
	}
	weatherID := 0
	if len(weather.Weather) > 0 {
		weatherID = weather.Weather[0].ID
		display.Emoji = WeatherEmoji(weatherID)
		display.Description = weather.Weather[0].Description
	}
	recommendation := Recommend(KelvinToCelsius(weather.Main.Temp), weatherID, weather.Wind.Speed, weather.Main.Humidity)
	display.Recommendation = &recommendation
	return display
}

func fault(city string, result model.Result) model.Display {
	switch result.Kind {
	case model.FaultTimeout:
		return failed(city, http.StatusGatewayTimeout, timeoutMessage)
	case model.FaultNetwork:
		return failed(city, http.StatusBadGateway, connectionMessage)
	}
	return failed(city, statusOrBadGateway(result.StatusCode), StatusMessage(result.StatusCode, result.Error))
}

func failed(city string, status int, message string) model.Display {
	return model.Display{City: city, Error: message, StatusCode: status}
}

func statusOrBadGateway(status int) int {
	if status >= 400 && status <= 599 {
		return status
	}
	return http.StatusBadGateway
}
