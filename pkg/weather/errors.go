package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the provider has no match for the city
	ErrNotFound = errors.New("city not found")

	// ErrUnauthorized is returned when the provider rejects the API key
	ErrUnauthorized = errors.New("invalid api key")

	// ErrMalformedResponse is returned when the payload is missing required fields
	ErrMalformedResponse = errors.New("malformed weather response")
)

// User-facing messages for each failure kind
const (
	MsgNotFound      = "City not found. Please check the spelling and try again."
	MsgUnauthorized  = "Invalid API key. Please check your OpenWeatherMap API key."
	MsgServicePrefix = "Weather service error: "
	MsgTransport     = "Failed to fetch weather data. Please check your internet connection."
	MsgMalformed     = "Received an unexpected response from the weather service."
)

// ServiceError is any non-success status other than 404 and 401
type ServiceError struct {
	StatusCode int
	Status     string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("API request failed with status: %d %s", e.StatusCode, e.Status)
}

// TransportError wraps a failure to complete the HTTP exchange
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to make request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage maps an error returned by the client or Normalize to the text
// shown in the error panel and toast.
func UserMessage(err error) string {
	var serviceErr *ServiceError
	var transportErr *TransportError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return MsgNotFound
	case errors.Is(err, ErrUnauthorized):
		return MsgUnauthorized
	case errors.As(err, &serviceErr):
		return MsgServicePrefix + serviceErr.Status
	case errors.As(err, &transportErr):
		return MsgTransport
	case errors.Is(err, ErrMalformedResponse):
		return MsgMalformed
	default:
		return MsgTransport
	}
}
