package display

import (
	"fmt"
	"math"
)

// KelvinToFahrenheit converts and rounds half up to a whole degree
func KelvinToFahrenheit(kelvin float64) int {
	return int(math.Floor(kelvin*9/5 - 459.67 + 0.5))
}

// FormatFahrenheit renders a kelvin reading as "<n>°F"
func FormatFahrenheit(kelvin float64) string {
	return fmt.Sprintf("%d°F", KelvinToFahrenheit(kelvin))
}
