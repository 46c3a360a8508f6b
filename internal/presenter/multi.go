package presenter

import (
	"github.com/valpere/pohoda/internal/interfaces"
	"github.com/valpere/pohoda/internal/models"
	"github.com/valpere/pohoda/pkg/weather"
)

// Multi forwards every transition to each presenter in order
type Multi []interfaces.Presenter

func NewMulti(presenters ...interfaces.Presenter) Multi {
	out := make(Multi, 0, len(presenters))
	for _, p := range presenters {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (m Multi) ShowLoading(loading bool) {
	for _, p := range m {
		p.ShowLoading(loading)
	}
}

func (m Multi) ShowWeather(reading weather.Reading) {
	for _, p := range m {
		p.ShowWeather(reading)
	}
}

func (m Multi) ShowError(message string, hasRetry bool) {
	for _, p := range m {
		p.ShowError(message, hasRetry)
	}
}

func (m Multi) ShowToast(toast models.Toast) {
	for _, p := range m {
		p.ShowToast(toast)
	}
}

func (m Multi) HideToast(id string) {
	for _, p := range m {
		p.HideToast(id)
	}
}

func (m Multi) ShowQuickPicks(cities []string) {
	for _, p := range m {
		p.ShowQuickPicks(cities)
	}
}

func (m Multi) HideAll() {
	for _, p := range m {
		p.HideAll()
	}
}

func (m Multi) Prefill(city string) {
	for _, p := range m {
		p.Prefill(city)
	}
}
