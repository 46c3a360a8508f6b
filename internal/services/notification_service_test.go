package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/pohoda/internal/models"
	"github.com/valpere/pohoda/tests/helpers"
)

func TestNotificationService_Notify(t *testing.T) {
	t.Run("toast is dismissed after its duration", func(t *testing.T) {
		presenter := helpers.NewRecordingPresenter()
		svc := NewNotificationService(presenter, 20*time.Millisecond, helpers.NewSilentTestLogger())
		defer svc.Stop()

		toast := svc.Notify("Weather updated for Paris, FR", models.ToastSuccess)

		assert.NotEmpty(t, toast.ID)
		assert.Equal(t, models.ToastSuccess, toast.Kind)
		assert.Equal(t, 20*time.Millisecond, toast.Duration)
		assert.Equal(t, toast.ID, svc.Current())

		assert.Eventually(t, func() bool {
			return presenter.Count(helpers.EventHideToast) == 1
		}, time.Second, 5*time.Millisecond)

		hidden, _ := presenter.Last(helpers.EventHideToast)
		assert.Equal(t, toast.ID, hidden.ToastID)
		assert.Empty(t, svc.Current())
	})

	t.Run("new toast cancels the previous dismissal", func(t *testing.T) {
		presenter := helpers.NewRecordingPresenter()
		svc := NewNotificationService(presenter, 60*time.Millisecond, helpers.NewSilentTestLogger())
		defer svc.Stop()

		first := svc.Notify("first", models.ToastError)
		time.Sleep(30 * time.Millisecond)
		second := svc.Notify("second", models.ToastSuccess)

		require.NotEqual(t, first.ID, second.ID)

		assert.Eventually(t, func() bool {
			return presenter.Count(helpers.EventHideToast) == 1
		}, time.Second, 5*time.Millisecond)

		// the first toast's timer would have fired by now had it not been cancelled
		time.Sleep(90 * time.Millisecond)

		assert.Equal(t, 1, presenter.Count(helpers.EventHideToast))
		hidden, _ := presenter.Last(helpers.EventHideToast)
		assert.Equal(t, second.ID, hidden.ToastID)
		assert.Equal(t, 2, presenter.Count(helpers.EventShowToast))
	})

	t.Run("stale expiry is ignored", func(t *testing.T) {
		presenter := helpers.NewRecordingPresenter()
		svc := NewNotificationService(presenter, time.Hour, helpers.NewSilentTestLogger())
		defer svc.Stop()

		first := svc.Notify("first", models.ToastError)
		svc.Notify("second", models.ToastError)

		svc.expire(first.ID)

		assert.Equal(t, 0, presenter.Count(helpers.EventHideToast))
	})
}

func TestNotificationService_Dismiss(t *testing.T) {
	presenter := helpers.NewRecordingPresenter()
	svc := NewNotificationService(presenter, 30*time.Millisecond, helpers.NewSilentTestLogger())
	defer svc.Stop()

	// nothing to dismiss yet
	svc.Dismiss()
	assert.Equal(t, 0, presenter.Count(helpers.EventHideToast))

	toast := svc.Notify("hello", models.ToastSuccess)
	svc.Dismiss()

	require.Equal(t, 1, presenter.Count(helpers.EventHideToast))
	hidden, _ := presenter.Last(helpers.EventHideToast)
	assert.Equal(t, toast.ID, hidden.ToastID)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, presenter.Count(helpers.EventHideToast))
}

func TestNotificationService_Stop(t *testing.T) {
	presenter := helpers.NewRecordingPresenter()
	svc := NewNotificationService(presenter, 20*time.Millisecond, helpers.NewSilentTestLogger())

	svc.Notify("hello", models.ToastSuccess)
	svc.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, presenter.Count(helpers.EventHideToast))
}
