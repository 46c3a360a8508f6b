package weather

import (
	"fmt"
	"math"
)

// msToKmh converts wind speed from m/s to km/h
const msToKmh = 3.6

// Reading is a normalized current-conditions reading. All numeric
// fields are already rounded.
type Reading struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Temperature int    `json:"temperature"`
	FeelsLike   int    `json:"feels_like"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"wind_speed"`
	Icon        string `json:"icon"`
	Glyph       string `json:"glyph"`
}

// Location formats the resolved place as "Name, CC"
func (r *Reading) Location() string {
	if r.Country == "" {
		return r.Name
	}
	return fmt.Sprintf("%s, %s", r.Name, r.Country)
}

// Normalize converts a raw provider payload into a Reading
func Normalize(payload *CurrentWeatherResponse) (*Reading, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedResponse)
	}
	if payload.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrMalformedResponse)
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("%w: missing condition entry", ErrMalformedResponse)
	}
	if payload.Main == nil {
		return nil, fmt.Errorf("%w: missing temperature block", ErrMalformedResponse)
	}

	primary := payload.Weather[0]

	return &Reading{
		Name:        payload.Name,
		Country:     payload.Sys.Country,
		Temperature: round(payload.Main.Temp),
		FeelsLike:   round(payload.Main.FeelsLike),
		Condition:   primary.Main,
		Description: primary.Description,
		Humidity:    round(payload.Main.Humidity),
		WindSpeed:   round(payload.Wind.Speed * msToKmh),
		Icon:        primary.Icon,
		Glyph:       Glyph(primary.Main),
	}, nil
}

func round(v float64) int {
	return int(math.Round(v))
}
