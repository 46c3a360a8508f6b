package helpers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// WeatherHandler answers one provider request for the given city
type WeatherHandler func(w http.ResponseWriter, city string)

// WeatherServer is a stand-in for the OpenWeatherMap API that records queried cities
type WeatherServer struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []string
	handler  WeatherHandler
}

// NewWeatherServer starts a provider stub; it is closed with the test
func NewWeatherServer(t *testing.T, handler WeatherHandler) *WeatherServer {
	ws := &WeatherServer{handler: handler}
	ws.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			http.NotFound(w, r)
			return
		}

		city := r.URL.Query().Get("q")
		ws.mu.Lock()
		ws.requests = append(ws.requests, city)
		h := ws.handler
		ws.mu.Unlock()

		h(w, city)
	}))
	t.Cleanup(ws.Server.Close)
	return ws
}

// URL returns the base URL to hand to the weather client
func (ws *WeatherServer) URL() string {
	return ws.Server.URL
}

// Requests returns the cities queried so far, in order
func (ws *WeatherServer) Requests() []string {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return append([]string(nil), ws.requests...)
}

// RespondJSON returns a handler that writes the given status and body
func RespondJSON(status int, body string) WeatherHandler {
	return func(w http.ResponseWriter, _ string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
