package model

// DailyForecast summarizes the 3 hour steps of one local calendar day
type DailyForecast struct {
	Date        string  `json:"date"`
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`
	WeatherID   int     `json:"weatherId"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Steps       int     `json:"steps"`
}
