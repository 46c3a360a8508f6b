package weather

// DefaultGlyph is shown for any category not in the table
const DefaultGlyph = "🌤️"

var conditionGlyphs = map[string]string{
	"Clear":        "☀️",
	"Clouds":       "☁️",
	"Rain":         "🌧️",
	"Drizzle":      "🌦️",
	"Thunderstorm": "⛈️",
	"Snow":         "❄️",
	"Mist":         "🌫️",
	"Fog":          "🌫️",
	"Haze":         "🌫️",
}

// Glyph returns the display glyph for a provider condition category.
// Matching is exact and case-sensitive.
func Glyph(condition string) string {
	if glyph, ok := conditionGlyphs[condition]; ok {
		return glyph
	}
	return DefaultGlyph
}
