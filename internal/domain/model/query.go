package model

import "strings"

const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
	// UnitsStandard reports temperatures in kelvin. It is not accepted from clients.
	UnitsStandard = "standard"

	DefaultSearchLimit = 5
)

// CityQuery looks a city up by name
type CityQuery struct {
	City  string `query:"city" validate:"required"`
	Units string `query:"units" validate:"oneof=metric imperial"`
}

// CoordinatesQuery looks a place up by latitude and longitude
type CoordinatesQuery struct {
	Lat   *float64 `query:"lat" validate:"required,gte=-90,lte=90"`
	Lon   *float64 `query:"lon" validate:"required,gte=-180,lte=180"`
	Units string   `query:"units" validate:"oneof=metric imperial"`
}

// SearchQuery is a free-text location search
type SearchQuery struct {
	Query string `query:"query" validate:"required"`
	Limit int    `query:"limit" validate:"gte=1,lte=10"`
}

// NewCityQuery trims the city and applies the default units
func NewCityQuery(city, units string) CityQuery {
	if units == "" {
		units = UnitsMetric
	}
	return CityQuery{City: strings.TrimSpace(city), Units: units}
}

// NewCoordinatesQuery applies the default units
func NewCoordinatesQuery(lat, lon *float64, units string) CoordinatesQuery {
	if units == "" {
		units = UnitsMetric
	}
	return CoordinatesQuery{Lat: lat, Lon: lon, Units: units}
}

// NewSearchQuery applies the default limit when none is given
func NewSearchQuery(query string, limit *int) SearchQuery {
	l := DefaultSearchLimit
	if limit != nil {
		l = *limit
	}
	return SearchQuery{Query: strings.TrimSpace(query), Limit: l}
}
