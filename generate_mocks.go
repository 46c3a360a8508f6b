//go:generate mockgen -source=internal/interfaces/services.go -destination=tests/mocks/services_mock.go -package=mocks
//go:generate mockgen -source=internal/interfaces/weather_client.go -destination=tests/mocks/weather_client_mock.go -package=mocks

package main

func main() {
	// This file is only used for generating mocks via go:generate comments
}
