package fixtures

import (
	"github.com/goccy/go-json"

	"github.com/valpere/pohoda/pkg/weather"
)

// CurrentWeatherPayload builds a well-formed provider payload
func CurrentWeatherPayload(name, country, condition string, temp, windMS float64) *weather.CurrentWeatherResponse {
	return &weather.CurrentWeatherResponse{
		Name: name,
		Main: &weather.MainBlock{
			Temp:      temp,
			FeelsLike: temp - 1.2,
			Humidity:  64,
			Pressure:  1013,
		},
		Weather: []weather.ConditionEntry{
			{Main: condition, Description: "test " + condition, Icon: "01d"},
		},
		Wind: weather.WindBlock{Speed: windMS, Deg: 180},
		Sys:  weather.SysBlock{Country: country},
	}
}

// ParisPayload is the canonical success fixture: 21.6 °C, 10 m/s, light rain
func ParisPayload() *weather.CurrentWeatherResponse {
	payload := CurrentWeatherPayload("Paris", "FR", "Rain", 21.6, 10.0)
	payload.Weather[0].Description = "light rain"
	payload.Weather[0].Icon = "10d"
	return payload
}

// GetMockWeatherResponse returns the provider JSON for a payload
func GetMockWeatherResponse(payload *weather.CurrentWeatherResponse) string {
	data, _ := json.Marshal(payload)
	return string(data)
}

// GetMalformedWeatherResponse returns JSON that decodes but lacks required fields
func GetMalformedWeatherResponse() string {
	return `{"name":"Paris","weather":[],"wind":{"speed":3.1}}`
}

// GetInvalidJSONResponse returns an invalid JSON response for error testing
func GetInvalidJSONResponse() string {
	return `{"invalid": json}`
}
