package presenter

import (
	"fmt"
	"io"
	"sync"

	"github.com/valpere/pohoda/internal/models"
	"github.com/valpere/pohoda/pkg/weather"
)

// Terminal prints transitions as plain lines
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) println(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(t.out, format+"\n", args...)
}

func (t *Terminal) ShowLoading(loading bool) {
	if loading {
		t.println("Searching...")
	}
}

func (t *Terminal) ShowWeather(reading weather.Reading) {
	t.println("%s", FormatReading(reading))
}

func (t *Terminal) ShowError(message string, hasRetry bool) {
	if hasRetry {
		t.println("❌ %s (retry available)", message)
		return
	}
	t.println("❌ %s", message)
}

func (t *Terminal) ShowToast(toast models.Toast) {
	t.println("[%s] %s", toast.Kind, toast.Message)
}

func (t *Terminal) HideToast(string) {}

func (t *Terminal) ShowQuickPicks(cities []string) {
	t.println("%s", FormatQuickPicks(cities))
}

func (t *Terminal) HideAll() {}

func (t *Terminal) Prefill(city string) {
	t.println("Last searched: %s", city)
}
