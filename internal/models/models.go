package models

import (
	"fmt"
	"time"

	"github.com/valpere/pohoda/pkg/weather"
)

// Phase is the lifecycle stage of the current search
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText lets phases appear as names in JSON views and logs
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for candidate := PhaseIdle; candidate <= PhaseError; candidate++ {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// SearchState is the process-wide state owned by the search controller
type SearchState struct {
	Phase         Phase            `json:"phase"`
	Query         string           `json:"query"`
	LastCity      string           `json:"last_city,omitempty"`
	ErrorMessage  string           `json:"error_message,omitempty"`
	Reading       *weather.Reading `json:"reading,omitempty"`
	Sequence      uint64           `json:"sequence"`
	LastUpdatedAt time.Time        `json:"last_updated_at"`
}

// HasRetry reports whether the error view should offer a retry
func (s SearchState) HasRetry() bool {
	return s.Phase == PhaseError && s.LastCity != ""
}

// ToastKind distinguishes success and error notifications
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient notification
type Toast struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Kind      ToastKind     `json:"kind"`
	CreatedAt time.Time     `json:"created_at"`
	Duration  time.Duration `json:"duration"`
}

// Preference is a single persisted key-value setting
type Preference struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Preference) TableName() string {
	return "preferences"
}
