package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/valpere/pohoda/internal/interfaces"
	"github.com/valpere/pohoda/internal/models"
)

// NotificationService shows transient toasts and owns their auto-dismissal.
// Only one toast is visible at a time; a new toast cancels the pending
// dismissal of the previous one.
type NotificationService struct {
	presenter interfaces.Presenter
	duration  time.Duration
	logger    *zerolog.Logger

	mu        sync.Mutex
	currentID string
	timer     *time.Timer
}

func NewNotificationService(presenter interfaces.Presenter, duration time.Duration, logger *zerolog.Logger) *NotificationService {
	return &NotificationService{
		presenter: presenter,
		duration:  duration,
		logger:    logger,
	}
}

// Notify shows a toast and schedules its dismissal
func (s *NotificationService) Notify(message string, kind models.ToastKind) models.Toast {
	toast := models.Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
		Duration:  s.duration,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.currentID = toast.ID
	s.timer = time.AfterFunc(s.duration, func() { s.expire(toast.ID) })

	s.presenter.ShowToast(toast)

	s.logger.Debug().
		Str("toast_id", toast.ID).
		Str("kind", string(kind)).
		Msg("Toast shown")

	return toast
}

// Dismiss hides the current toast immediately
func (s *NotificationService) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentID == "" {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.hideLocked()
}

// Current returns the id of the visible toast, or "" if none
func (s *NotificationService) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// Stop cancels any pending dismissal without touching the presenter
func (s *NotificationService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *NotificationService) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a newer toast replaced this one after the timer fired
	if s.currentID != id {
		return
	}
	s.hideLocked()
}

func (s *NotificationService) hideLocked() {
	id := s.currentID
	s.currentID = ""
	s.timer = nil
	s.presenter.HideToast(id)
}
