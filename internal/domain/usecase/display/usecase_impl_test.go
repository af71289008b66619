package display

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"weather-api/internal/domain/model"
)

type stubGateway struct {
	result    model.Result
	lastUnits string
	calls     int
}

func (s *stubGateway) CurrentWeatherByCity(_ context.Context, _ string, units string) model.Result {
	s.calls++
	s.lastUnits = units
	return s.result
}

func (s *stubGateway) CurrentWeatherByCoordinates(context.Context, float64, float64, string) model.Result {
	return s.result
}

func (s *stubGateway) ForecastByCity(context.Context, string, string) model.Result {
	return s.result
}

func (s *stubGateway) DirectGeocode(context.Context, string, int) model.Result {
	return s.result
}

func (s *stubGateway) AirPollution(context.Context, float64, float64) model.Result {
	return s.result
}

func TestKelvinToFahrenheit(t *testing.T) {
	cases := map[float64]string{
		273.15: "32°F",
		0:      "-460°F",
		300:    "80°F",
		255.37: "0°F",
	}
	for kelvin, want := range cases {
		if got := FormatFahrenheit(kelvin); got != want {
			t.Errorf("FormatFahrenheit(%v) = %q, want %q", kelvin, got, want)
		}
	}
}

func TestWeatherEmoji(t *testing.T) {
	cases := map[int]string{
		200: "⛈", 232: "⛈", 233: "",
		300: "🌦", 321: "🌦",
		500: "🌧", 531: "🌧",
		600: "❄", 622: "❄",
		701: "🌫", 741: "🌫", 751: "",
		762: "🌋", 771: "💨", 781: "🌪",
		800: "☀", 801: "☁", 804: "☁",
		999: "", 0: "", -1: "",
	}
	for code, want := range cases {
		if got := WeatherEmoji(code); got != want {
			t.Errorf("WeatherEmoji(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestDisplaySuccess(t *testing.T) {
	gateway := &stubGateway{result: model.Ok(json.RawMessage(
		`{"cod":200,"name":"London","main":{"temp":273.15},"weather":[{"id":800,"description":"clear sky"}]}`))}

	display := NewDisplayUseCase(gateway).DisplayByCity(context.Background(), "London")
	if display.Failed() {
		t.Fatalf("unexpected error %q", display.Error)
	}
	if display.Temperature != "32°F" || display.Emoji != "☀" || display.Description != "clear sky" {
		t.Fatalf("unexpected display %+v", display)
	}
	if gateway.lastUnits != model.UnitsStandard {
		t.Fatalf("expected kelvin readings, got units %q", gateway.lastUnits)
	}
	if display.Recommendation == nil || display.Recommendation.Outfit != "🧥 Warm jacket, long pants, and closed shoes" {
		t.Fatalf("expected a recommendation for 0°C, got %+v", display.Recommendation)
	}
}

func TestDisplayStatusMessages(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{http.StatusNotFound, "Not found:\nCity not found"},
		{http.StatusUnauthorized, "Unauthorized:\nInvalid API key"},
		{http.StatusServiceUnavailable, "Service Unavailable:\nServer is down"},
		{http.StatusTeapot, "HTTP error occurred:\nAPI error: 418 I'm a teapot"},
	}
	for _, tc := range cases {
		gateway := &stubGateway{result: model.Fail(model.FaultUpstream, tc.status, "API error: 418 I'm a teapot")}
		display := NewDisplayUseCase(gateway).DisplayByCity(context.Background(), "Nowhere")
		if display.Error != tc.want || display.StatusCode != tc.status {
			t.Errorf("status %d: got %q/%d, want %q", tc.status, display.Error, display.StatusCode, tc.want)
		}
		if display.Temperature != "" || display.Emoji != "" || display.Description != "" || display.Recommendation != nil {
			t.Errorf("status %d: error display carries weather fields %+v", tc.status, display)
		}
	}
}

func TestDisplayTransportFaults(t *testing.T) {
	timeout := NewDisplayUseCase(&stubGateway{result: model.Fail(model.FaultTimeout, 0, "Request timeout")}).
		DisplayByCity(context.Background(), "Paris")
	if timeout.Error != "Timeout Error:\nThe request timed out" || timeout.StatusCode != http.StatusGatewayTimeout {
		t.Fatalf("unexpected timeout display %+v", timeout)
	}

	network := NewDisplayUseCase(&stubGateway{result: model.Fail(model.FaultNetwork, 0, "Network error: refused")}).
		DisplayByCity(context.Background(), "Paris")
	if network.Error != "Connection Error:\nCheck your internet connection" || network.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected network display %+v", network)
	}
}

func TestDisplayBlankCitySkipsUpstream(t *testing.T) {
	gateway := &stubGateway{}
	display := NewDisplayUseCase(gateway).DisplayByCity(context.Background(), "  ")
	if display.StatusCode != http.StatusBadRequest || gateway.calls != 0 {
		t.Fatalf("unexpected %+v after %d calls", display, gateway.calls)
	}
}
