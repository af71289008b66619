package display

type emojiRange struct {
	from, to int
	emoji    string
}

// weatherEmojis maps provider condition codes to an emoji. Ranges are disjoint.
var weatherEmojis = []emojiRange{
	{200, 232, "⛈"},
	{300, 321, "🌦"},
	{500, 531, "🌧"},
	{600, 622, "❄"},
	{701, 741, "🌫"},
	{762, 762, "🌋"},
	{771, 771, "💨"},
	{781, 781, "🌪"},
	{800, 800, "☀"},
	{801, 804, "☁"},
}

// WeatherEmoji returns the emoji for a condition code, or "" when no range matches
func WeatherEmoji(code int) string {
	for _, r := range weatherEmojis {
		if code >= r.from && code <= r.to {
			return r.emoji
		}
	}
	return ""
}
