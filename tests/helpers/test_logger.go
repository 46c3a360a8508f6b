package helpers

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger captures log output for assertions
type TestLogger struct {
	mu     sync.Mutex
	buffer *bytes.Buffer
	Logger *zerolog.Logger
}

// NewTestLogger creates a new test logger that captures output at debug level
func NewTestLogger() *TestLogger {
	tl := &TestLogger{buffer: &bytes.Buffer{}}
	logger := zerolog.New(tl).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	tl.Logger = &logger
	return tl
}

// Write lets the logger write into the guarded buffer from any goroutine
func (tl *TestLogger) Write(p []byte) (int, error) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.buffer.Write(p)
}

// NewSilentTestLogger creates a logger that discards all output
func NewSilentTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard).With().Timestamp().Logger()
	return &logger
}

// GetLogOutput returns the captured log output
func (tl *TestLogger) GetLogOutput() string {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.buffer.String()
}

// AssertLogContains asserts that the log buffer contains the specified string
func (tl *TestLogger) AssertLogContains(t *testing.T, message string) {
	t.Helper()
	output := tl.GetLogOutput()
	if !bytes.Contains([]byte(output), []byte(message)) {
		t.Errorf("Expected log to contain '%s', but got: %s", message, output)
	}
}

// AssertLogLevel asserts that a log entry with the specified level exists
func (tl *TestLogger) AssertLogLevel(t *testing.T, level string) {
	t.Helper()
	tl.AssertLogContains(t, `"level":"`+level+`"`)
}
