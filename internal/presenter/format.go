package presenter

import (
	"fmt"
	"strings"

	"github.com/valpere/pohoda/pkg/weather"
)

// FormatReading renders a reading as the multi-line text used by the
// terminal and chat adapters.
func FormatReading(r weather.Reading) string {
	return fmt.Sprintf(`%s %s

🌡️ Temperature: %d°C (feels like %d°C)
💧 Humidity: %d%%
🌬️ Wind: %d km/h

%s`,
		r.Glyph,
		r.Location(),
		r.Temperature,
		r.FeelsLike,
		r.Humidity,
		r.WindSpeed,
		capitalize(r.Description))
}

// FormatQuickPicks renders the preset list offered before the first search
func FormatQuickPicks(cities []string) string {
	if len(cities) == 0 {
		return "Enter a city name to get the current weather."
	}
	return "Enter a city name or try one of: " + strings.Join(cities, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
