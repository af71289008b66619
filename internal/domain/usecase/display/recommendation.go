package display

import (
	"math"

	"weather-api/internal/domain/model"
)

const (
	hatAboveCelsius   = 28
	scarfBelowCelsius = 10
	scarfWindAbove    = 5
	windyAbove        = 10
	humidAbove        = 80
	dryBelow          = 30
)

type outfitBand struct {
	below  float64
	outfit string
	layers string
	icon   string
}

// outfitBands are checked in order, the first band whose upper bound is above the temperature wins
var outfitBands = []outfitBand{
	{0, "🧥 Heavy winter coat, scarf, gloves, and warm boots", "Multiple layers recommended", "🧥"},
	{10, "🧥 Warm jacket, long pants, and closed shoes", "Layer up with a sweater", "🧥"},
	{15, "🧥 Light jacket or hoodie with jeans", "Bring a light layer", "👔"},
	{20, "👕 Long sleeve shirt or light sweater", "Comfortable casual wear", "👕"},
	{25, "👕 T-shirt and jeans or shorts", "Light clothing", "👕"},
	{30, "👕 Light t-shirt and shorts", "Stay cool and comfortable", "🩳"},
	{math.Inf(1), "🩳 Tank top, shorts, and sandals", "Minimal clothing, stay hydrated", "🩳"},
}

// KelvinToCelsius converts a standard units reading
func KelvinToCelsius(kelvin float64) float64 {
	return kelvin - 273.15
}

// Recommend picks clothing, umbrella, accessories and a comfort tip.
// windSpeed is in m/s, humidity in percent.
func Recommend(celsius float64, weatherID int, windSpeed float64, humidity int) model.Recommendation {
	band := outfitBands[len(outfitBands)-1]
	for _, b := range outfitBands {
		if celsius < b.below {
			band = b
			break
		}
	}

	return model.Recommendation{
		Outfit:      band.outfit,
		Layers:      band.layers,
		Icon:        band.icon,
		Umbrella:    umbrella(weatherID),
		Accessories: accessories(celsius, weatherID, windSpeed),
		ComfortTip:  comfortTip(humidity, windSpeed),
	}
}

// umbrella covers thunderstorm, drizzle, rain (2xx to 5xx) and snow (6xx)
func umbrella(weatherID int) model.Umbrella {
	switch {
	case weatherID >= 200 && weatherID < 600:
		return model.Umbrella{Needed: true, Reason: "Rain expected", Icon: "☂️"}
	case weatherID >= 600 && weatherID < 700:
		return model.Umbrella{Needed: true, Reason: "Snow expected", Icon: "☂️"}
	}
	return model.Umbrella{Needed: false, Reason: "No rain expected", Icon: "✅"}
}

func accessories(celsius float64, weatherID int, windSpeed float64) []model.Accessory {
	items := []model.Accessory{}
	if weatherID == 800 {
		items = append(items, model.Accessory{Item: "😎 Sunglasses", Reason: "Sunny weather"})
	}
	if celsius > hatAboveCelsius {
		items = append(items, model.Accessory{Item: "🧢 Hat", Reason: "Protect from sun"})
	}
	if celsius < scarfBelowCelsius && windSpeed > scarfWindAbove {
		items = append(items, model.Accessory{Item: "🧣 Scarf", Reason: "Cold and windy"})
	}
	return items
}

func comfortTip(humidity int, windSpeed float64) string {
	switch {
	case humidity > humidAbove:
		return "💧 High humidity - dress in breathable fabrics"
	case humidity < dryBelow:
		return "🌵 Low humidity - stay hydrated and moisturize"
	case windSpeed > windyAbove:
		return "💨 Windy conditions - secure loose clothing"
	}
	return "✨ Perfect conditions for outdoor activities!"
}
