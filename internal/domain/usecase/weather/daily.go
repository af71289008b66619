package weather

import (
	"time"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
)

const maxForecastDays = 5

// SummarizeDaily groups the 3 hour steps by calendar day in the city's timezone.
// Days keep the order of the steps, the first step of a day sets its condition.
func SummarizeDaily(forecast external.ForecastResponse, maxDays int) []model.DailyForecast {
	zone := time.FixedZone(forecast.City.Name, forecast.City.Timezone)
	days := make([]model.DailyForecast, 0, maxDays)
	index := make(map[string]int, maxDays)

	for _, step := range forecast.List {
		date := time.Unix(step.Dt, 0).In(zone).Format(time.DateOnly)

		i, ok := index[date]
		if !ok {
			if len(days) == maxDays {
				break
			}
			day := model.DailyForecast{
				Date:    date,
				TempMin: step.Main.Temp,
				TempMax: step.Main.Temp,
			}
			if len(step.Weather) > 0 {
				day.WeatherID = step.Weather[0].ID
				day.Description = step.Weather[0].Description
				day.Icon = step.Weather[0].Icon
			}
			days = append(days, day)
			i = len(days) - 1
			index[date] = i
		}

		day := &days[i]
		day.TempMin = min(day.TempMin, step.Main.Temp)
		day.TempMax = max(day.TempMax, step.Main.Temp)
		day.Steps++
	}
	return days
}
