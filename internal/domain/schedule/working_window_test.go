//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func window(t *testing.T, barberID uuid.UUID, day schedule.Weekday, start, end string) schedule.WorkingWindow {
	t.Helper()
	w, err := schedule.NewWorkingWindow(barberID, day, mustTimeOfDay(t, start), mustTimeOfDay(t, end))
	require.NoError(t, err)
	return w
}

func TestNewWorkingWindow(t *testing.T) {
	barberID := uuid.New()

	t.Run("valid window", func(t *testing.T) {
		w := window(t, barberID, schedule.Monday, "09:00", "18:00")
		assert.NotEqual(t, uuid.Nil, w.ID())
		assert.Equal(t, barberID, w.BarberID())
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := schedule.NewWorkingWindow(barberID, schedule.Monday,
			mustTimeOfDay(t, "18:00"), mustTimeOfDay(t, "09:00"))
		assert.ErrorIs(t, err, schedule.ErrWindowNotOrdered)

		_, err = schedule.NewWorkingWindow(barberID, schedule.Monday,
			mustTimeOfDay(t, "09:00"), mustTimeOfDay(t, "09:00"))
		assert.ErrorIs(t, err, schedule.ErrWindowNotOrdered)
	})

	t.Run("invalid weekday", func(t *testing.T) {
		_, err := schedule.NewWorkingWindow(barberID, schedule.Weekday(0),
			mustTimeOfDay(t, "09:00"), mustTimeOfDay(t, "18:00"))
		assert.ErrorIs(t, err, schedule.ErrInvalidWeekday)
	})
}

func TestIsWithinWorkingHours(t *testing.T) {
	barberID := uuid.New()
	windows := []schedule.WorkingWindow{
		window(t, barberID, schedule.Monday, "09:00", "13:00"),
		window(t, barberID, schedule.Monday, "14:00", "18:00"),
		window(t, barberID, schedule.Saturday, "10:00", "14:00"),
	}

	// 2025-10-20 is a Monday.
	monday := func(hour, minute int) time.Time {
		return time.Date(2025, 10, 20, hour, minute, 0, 0, time.UTC)
	}

	t.Run("inside a window", func(t *testing.T) {
		assert.True(t, schedule.IsWithinWorkingHours(windows, monday(12, 45)))
	})

	t.Run("both bounds are inclusive", func(t *testing.T) {
		assert.True(t, schedule.IsWithinWorkingHours(windows, monday(9, 0)))
		assert.True(t, schedule.IsWithinWorkingHours(windows, monday(13, 0)))
		assert.True(t, schedule.IsWithinWorkingHours(windows, monday(18, 0)))
	})

	t.Run("between windows", func(t *testing.T) {
		assert.False(t, schedule.IsWithinWorkingHours(windows, monday(13, 30)))
	})

	t.Run("before and after the day", func(t *testing.T) {
		assert.False(t, schedule.IsWithinWorkingHours(windows, monday(8, 59)))
		assert.False(t, schedule.IsWithinWorkingHours(windows, monday(18, 1)))
	})

	t.Run("day without windows", func(t *testing.T) {
		sunday := time.Date(2025, 10, 26, 11, 0, 0, 0, time.UTC)
		assert.False(t, schedule.IsWithinWorkingHours(windows, sunday))
	})

	t.Run("second window of the same day", func(t *testing.T) {
		assert.True(t, schedule.IsWithinWorkingHours(windows, monday(15, 0)))
	})

	t.Run("no windows at all", func(t *testing.T) {
		assert.False(t, schedule.IsWithinWorkingHours(nil, monday(12, 0)))
	})
}
