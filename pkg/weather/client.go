package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org"
	DefaultUnits   = "metric"
)

// Client represents an OpenWeatherMap current-weather client
type Client struct {
	apiKey     string
	baseURL    string
	units      string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// CurrentWeatherResponse is the raw provider payload for /data/2.5/weather.
// Main is a pointer so that a missing temperature block can be told apart
// from a zero reading.
type CurrentWeatherResponse struct {
	Name    string           `json:"name"`
	Main    *MainBlock       `json:"main"`
	Weather []ConditionEntry `json:"weather"`
	Wind    WindBlock        `json:"wind"`
	Sys     SysBlock         `json:"sys"`
}

type MainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
	Pressure  float64 `json:"pressure"`
}

type ConditionEntry struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type WindBlock struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

type SysBlock struct {
	Country string `json:"country"`
}

// NewClient creates a new weather API client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		units:   DefaultUnits,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

// SetBaseURL points the client at another host, e.g. a proxy or a test server
func (c *Client) SetBaseURL(baseURL string) {
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// SetUserAgent sets the User-Agent header sent with every request
func (c *Client) SetUserAgent(userAgent string) {
	c.userAgent = userAgent
}

// SetRateLimit caps outbound requests per second. A non-positive limit disables it.
func (c *Client) SetRateLimit(perSecond float64, burst int) {
	if perSecond <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 1)
		return
	}
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
}

// GetCurrentWeatherByCity retrieves current conditions for a city name
func (c *Client) GetCurrentWeatherByCity(ctx context.Context, city string) (*CurrentWeatherResponse, error) {
	requestURL := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=%s&units=%s",
		c.baseURL, url.QueryEscape(city), url.QueryEscape(c.apiKey), c.units)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req) // nosec G704
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, &ServiceError{StatusCode: resp.StatusCode, Status: statusText(resp)}
	}

	var payload CurrentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w: %v", ErrMalformedResponse, err)
	}

	return &payload, nil
}

// statusText returns the reason phrase without the numeric code
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
