package interfaces

import (
	"context"

	"github.com/valpere/pohoda/internal/models"
	"github.com/valpere/pohoda/pkg/weather"
)

//go:generate mockgen -source=services.go -destination=../../tests/mocks/services_mock.go -package=mocks

// LastCityStore persists the last successfully searched city
type LastCityStore interface {
	// Get returns the stored city and whether one was present
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, city string) error
}

// Presenter receives view transitions from the search controller.
// Implementations must not block for long; they are called inline.
type Presenter interface {
	ShowLoading(loading bool)
	ShowWeather(reading weather.Reading)
	ShowError(message string, hasRetry bool)
	ShowToast(toast models.Toast)
	HideToast(id string)
	ShowQuickPicks(cities []string)
	HideAll()
	Prefill(city string)
}
