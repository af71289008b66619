package external

import "encoding/json"

// CurrentWeatherResponse holds the fields of a current weather reply that are read server side
type CurrentWeatherResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Name    string          `json:"name"`
	Main    MainBlock       `json:"main"`
	Wind    WindBlock       `json:"wind"`
	Weather []Condition     `json:"weather"`
}

// MainBlock holds the temperature readings
type MainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

// WindBlock holds the wind reading. Speed is m/s in metric and standard units, mph in imperial.
type WindBlock struct {
	Speed float64 `json:"speed"`
}

// Condition is one entry of the weather array
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// StatusCode returns cod as an integer. The provider sends it as a number or a string.
func (r CurrentWeatherResponse) StatusCode() int {
	return parseCod(r.Cod)
}

// ForecastResponse is the 5 day / 3 hour forecast reply
type ForecastResponse struct {
	Cod  json.RawMessage `json:"cod"`
	List []ForecastItem  `json:"list"`
	City ForecastCity    `json:"city"`
}

// ForecastItem is one 3 hour step
type ForecastItem struct {
	Dt      int64       `json:"dt"`
	Main    MainBlock   `json:"main"`
	Weather []Condition `json:"weather"`
}

// ForecastCity describes the forecast location. Timezone is the UTC offset in seconds.
type ForecastCity struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"`
}

// GeoLocation is one entry of a direct geocoding reply
type GeoLocation struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   *string `json:"state,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// APIErrorResponse is the error body sent by the provider
type APIErrorResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}

func parseCod(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		var parsed int
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			return parsed
		}
	}
	return 0
}
