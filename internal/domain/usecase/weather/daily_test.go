package weather

import (
	"context"
	"encoding/json"
	"testing"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
)

// 2024-01-01T00:00:00Z
const newYear int64 = 1704067200

func step(hours int64, temp float64, id int) external.ForecastItem {
	return external.ForecastItem{
		Dt:      newYear + hours*3600,
		Main:    external.MainBlock{Temp: temp},
		Weather: []external.Condition{{ID: id, Description: "desc", Icon: "01d"}},
	}
}

func TestSummarizeDaily(t *testing.T) {
	cases := []struct {
		name     string
		timezone int
		list     []external.ForecastItem
		want     []model.DailyForecast
	}{
		{
			name: "groups by day with min and max",
			list: []external.ForecastItem{step(0, 5, 800), step(3, 8, 801), step(21, 2, 500), step(24, 10, 500)},
			want: []model.DailyForecast{
				{Date: "2024-01-01", TempMin: 2, TempMax: 8, WeatherID: 800, Steps: 3},
				{Date: "2024-01-02", TempMin: 10, TempMax: 10, WeatherID: 500, Steps: 1},
			},
		},
		{
			name:     "uses the city timezone",
			timezone: -5 * 3600,
			list:     []external.ForecastItem{step(0, 1, 600), step(6, 3, 601)},
			want: []model.DailyForecast{
				{Date: "2023-12-31", TempMin: 1, TempMax: 1, WeatherID: 600, Steps: 1},
				{Date: "2024-01-01", TempMin: 3, TempMax: 3, WeatherID: 601, Steps: 1},
			},
		},
		{
			name: "stops after five days",
			list: []external.ForecastItem{
				step(0, 1, 800), step(24, 2, 800), step(48, 3, 800), step(72, 4, 800),
				step(96, 5, 800), step(120, 6, 800), step(144, 7, 800),
			},
			want: []model.DailyForecast{
				{Date: "2024-01-01", TempMin: 1, TempMax: 1, WeatherID: 800, Steps: 1},
				{Date: "2024-01-02", TempMin: 2, TempMax: 2, WeatherID: 800, Steps: 1},
				{Date: "2024-01-03", TempMin: 3, TempMax: 3, WeatherID: 800, Steps: 1},
				{Date: "2024-01-04", TempMin: 4, TempMax: 4, WeatherID: 800, Steps: 1},
				{Date: "2024-01-05", TempMin: 5, TempMax: 5, WeatherID: 800, Steps: 1},
			},
		},
		{
			name: "empty forecast",
			want: []model.DailyForecast{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forecast := external.ForecastResponse{List: tc.list, City: external.ForecastCity{Timezone: tc.timezone}}
			got := SummarizeDaily(forecast, maxForecastDays)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d days, got %+v", len(tc.want), got)
			}
			for i, want := range tc.want {
				day := got[i]
				if day.Date != want.Date || day.TempMin != want.TempMin || day.TempMax != want.TempMax ||
					day.WeatherID != want.WeatherID || day.Steps != want.Steps {
					t.Errorf("day %d: got %+v, want %+v", i, day, want)
				}
			}
		})
	}
}

func TestDailyForecastByCity(t *testing.T) {
	body, _ := json.Marshal(external.ForecastResponse{
		Cod:  json.RawMessage(`"200"`),
		List: []external.ForecastItem{step(0, 5, 800), step(3, 9, 800)},
	})
	gateway := &fakeGateway{current: model.Ok(body)}

	days, result := NewWeatherUseCase(gateway).DailyForecastByCity(context.Background(), model.NewCityQuery("London", ""))
	if !result.Success || len(days) != 1 || days[0].TempMin != 5 || days[0].TempMax != 9 {
		t.Fatalf("unexpected summary %+v %+v", days, result)
	}
	if len(gateway.calls) != 1 || gateway.calls[0] != "forecast:London" {
		t.Fatalf("unexpected upstream calls %v", gateway.calls)
	}
}

func TestDailyForecastByCityPassesFailuresThrough(t *testing.T) {
	gateway := &fakeGateway{current: model.Fail(model.FaultNotFound, 404, "Location not found")}

	days, result := NewWeatherUseCase(gateway).DailyForecastByCity(context.Background(), model.NewCityQuery("Nowhere", ""))
	if days != nil || result.Success || result.Error != "Location not found" {
		t.Fatalf("unexpected %+v %+v", days, result)
	}

	_, invalid := NewWeatherUseCase(gateway).DailyForecastByCity(context.Background(), model.NewCityQuery("", ""))
	if invalid.Kind != model.FaultInvalidQuery {
		t.Fatalf("expected invalid query, got %+v", invalid)
	}
}
