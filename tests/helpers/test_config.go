package helpers

import (
	"os"
	"time"

	"github.com/valpere/pohoda/internal/config"
)

// GetTestConfig returns a configuration suitable for testing
func GetTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:          8081,
			RateLimit:     100,
			RateBurst:     100,
			SearchTimeout: 5 * time.Second,
		},
		Weather: config.WeatherConfig{
			OpenWeatherAPIKey: "test_weather_api_key",
			BaseURL:           "http://127.0.0.1:0",
		},
		Storage: config.StorageConfig{
			Driver: "memory",
		},
		Redis: config.RedisConfig{
			Host: "localhost",
			Port: 6379,
			DB:   1, // Use different DB for tests
		},
		UI: config.UIConfig{
			ToastDuration: 50 * time.Millisecond,
			QuickPicks:    []string{"London", "New York", "Tokyo", "Paris", "Sydney"},
		},
		Logging: config.LoggingConfig{
			Level:  "debug",
			Format: "console",
		},
	}
}

// GetTestConfigFromEnv returns test config with environment overrides
func GetTestConfigFromEnv() *config.Config {
	cfg := GetTestConfig()

	if apiKey := os.Getenv("TEST_OPENWEATHER_API_KEY"); apiKey != "" {
		cfg.Weather.OpenWeatherAPIKey = apiKey
	}

	if redisHost := os.Getenv("TEST_REDIS_HOST"); redisHost != "" {
		cfg.Redis.Host = redisHost
	}

	return cfg
}
