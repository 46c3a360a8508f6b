package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseIdle, "idle"},
		{PhaseLoading, "loading"},
		{PhaseSuccess, "success"},
		{PhaseError, "error"},
		{Phase(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestSearchState_JSONPhaseName(t *testing.T) {
	data, err := json.Marshal(SearchState{Phase: PhaseError, ErrorMessage: "boom"})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"phase":"error"`)
	assert.Contains(t, string(data), `"error_message":"boom"`)
	assert.NotContains(t, string(data), `"reading"`)
}

func TestSearchState_HasRetry(t *testing.T) {
	tests := []struct {
		name     string
		state    SearchState
		expected bool
	}{
		{"error with last city", SearchState{Phase: PhaseError, LastCity: "Paris"}, true},
		{"error without last city", SearchState{Phase: PhaseError}, false},
		{"success with last city", SearchState{Phase: PhaseSuccess, LastCity: "Paris"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.HasRetry())
		})
	}
}

func TestPreference_TableName(t *testing.T) {
	assert.Equal(t, "preferences", Preference{}.TableName())
}

func TestPhase_UnmarshalText(t *testing.T) {
	var state SearchState
	require.NoError(t, json.Unmarshal([]byte(`{"phase":"loading"}`), &state))
	assert.Equal(t, PhaseLoading, state.Phase)

	assert.Error(t, json.Unmarshal([]byte(`{"phase":"sleeping"}`), &state))
}
