// Package presenter contains adapters that render search transitions.
package presenter

import (
	"sync"

	"github.com/valpere/pohoda/internal/models"
	"github.com/valpere/pohoda/pkg/weather"
)

// ErrorView is the persistent error panel
type ErrorView struct {
	Message  string `json:"message"`
	HasRetry bool   `json:"has_retry"`
}

// Snapshot is what a client would currently see on screen
type Snapshot struct {
	Loading    bool             `json:"loading"`
	Weather    *weather.Reading `json:"weather,omitempty"`
	Error      *ErrorView       `json:"error,omitempty"`
	Toast      *models.Toast    `json:"toast,omitempty"`
	QuickPicks []string         `json:"quick_picks,omitempty"`
	Prefill    string           `json:"prefill,omitempty"`
}

// View keeps the latest rendered state in memory for polling clients
type View struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

func NewView() *View {
	return &View{}
}

func (v *View) ShowLoading(loading bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot.Loading = loading
}

func (v *View) ShowWeather(reading weather.Reading) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot.Weather = &reading
	v.snapshot.Error = nil
}

func (v *View) ShowError(message string, hasRetry bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot.Error = &ErrorView{Message: message, HasRetry: hasRetry}
	v.snapshot.Weather = nil
}

func (v *View) ShowToast(toast models.Toast) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot.Toast = &toast
}

func (v *View) HideToast(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.snapshot.Toast != nil && v.snapshot.Toast.ID == id {
		v.snapshot.Toast = nil
	}
}

func (v *View) ShowQuickPicks(cities []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot.QuickPicks = append([]string(nil), cities...)
}

// HideAll clears the result, the error panel and the quick picks. A visible
// toast stays until its own dismissal.
func (v *View) HideAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot.Weather = nil
	v.snapshot.Error = nil
	v.snapshot.QuickPicks = nil
}

func (v *View) Prefill(city string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot.Prefill = city
}

// Snapshot returns a deep copy of the current view
func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()

	s := v.snapshot
	if s.Weather != nil {
		reading := *s.Weather
		s.Weather = &reading
	}
	if s.Error != nil {
		errView := *s.Error
		s.Error = &errView
	}
	if s.Toast != nil {
		toast := *s.Toast
		s.Toast = &toast
	}
	s.QuickPicks = append([]string(nil), s.QuickPicks...)
	return s
}
