package helpers

import (
	"sync"

	"github.com/valpere/pohoda/internal/models"
	"github.com/valpere/pohoda/pkg/weather"
)

// Presenter event kinds recorded by RecordingPresenter
const (
	EventShowLoading    = "show_loading"
	EventShowWeather    = "show_weather"
	EventShowError      = "show_error"
	EventShowToast      = "show_toast"
	EventHideToast      = "hide_toast"
	EventShowQuickPicks = "show_quick_picks"
	EventHideAll        = "hide_all"
	EventPrefill        = "prefill"
)

// PresenterEvent is one recorded view transition
type PresenterEvent struct {
	Kind     string
	Loading  bool
	Reading  weather.Reading
	Message  string
	HasRetry bool
	Toast    models.Toast
	ToastID  string
	Cities   []string
	City     string
}

// RecordingPresenter records every call so tests can assert on the sequence
type RecordingPresenter struct {
	mu     sync.Mutex
	events []PresenterEvent
}

func NewRecordingPresenter() *RecordingPresenter {
	return &RecordingPresenter{}
}

func (p *RecordingPresenter) record(e PresenterEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *RecordingPresenter) ShowLoading(loading bool) {
	p.record(PresenterEvent{Kind: EventShowLoading, Loading: loading})
}

func (p *RecordingPresenter) ShowWeather(reading weather.Reading) {
	p.record(PresenterEvent{Kind: EventShowWeather, Reading: reading})
}

func (p *RecordingPresenter) ShowError(message string, hasRetry bool) {
	p.record(PresenterEvent{Kind: EventShowError, Message: message, HasRetry: hasRetry})
}

func (p *RecordingPresenter) ShowToast(toast models.Toast) {
	p.record(PresenterEvent{Kind: EventShowToast, Toast: toast, Message: toast.Message})
}

func (p *RecordingPresenter) HideToast(id string) {
	p.record(PresenterEvent{Kind: EventHideToast, ToastID: id})
}

func (p *RecordingPresenter) ShowQuickPicks(cities []string) {
	p.record(PresenterEvent{Kind: EventShowQuickPicks, Cities: append([]string(nil), cities...)})
}

func (p *RecordingPresenter) HideAll() {
	p.record(PresenterEvent{Kind: EventHideAll})
}

func (p *RecordingPresenter) Prefill(city string) {
	p.record(PresenterEvent{Kind: EventPrefill, City: city})
}

// Events returns a copy of everything recorded so far
func (p *RecordingPresenter) Events() []PresenterEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PresenterEvent(nil), p.events...)
}

// Kinds returns the recorded event kinds in order
func (p *RecordingPresenter) Kinds() []string {
	events := p.Events()
	kinds := make([]string, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}

// Count returns how many events of a kind were recorded
func (p *RecordingPresenter) Count(kind string) int {
	n := 0
	for _, e := range p.Events() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent event of a kind
func (p *RecordingPresenter) Last(kind string) (PresenterEvent, bool) {
	events := p.Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == kind {
			return events[i], true
		}
	}
	return PresenterEvent{}, false
}

// Reset drops all recorded events
func (p *RecordingPresenter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}
