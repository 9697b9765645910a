//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/appointment"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/booking"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixtures share one barber working Mondays 09:00-18:00 (2025-10-20 is a
// Monday) with time off 12:00-14:00 and one booked slot 15:00-15:30.
type fixture struct {
	windows  []schedule.WorkingWindow
	timeOff  []schedule.TimeOffPeriod
	existing []*appointment.Appointment
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	barberID := uuid.New()

	start, err := schedule.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	end, err := schedule.ParseTimeOfDay("18:00")
	require.NoError(t, err)
	w, err := schedule.NewWorkingWindow(barberID, schedule.Monday, start, end)
	require.NoError(t, err)

	off, err := schedule.NewTimeOffPeriod(barberID, at(12, 0), at(14, 0), "lunch training")
	require.NoError(t, err)

	booked := bookedAppointment(t, barberID, at(15, 0), 30*time.Minute)

	return fixture{
		windows:  []schedule.WorkingWindow{w},
		timeOff:  []schedule.TimeOffPeriod{off},
		existing: []*appointment.Appointment{booked},
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 20, hour, minute, 0, 0, time.UTC)
}

func bookedAppointment(t *testing.T, barberID uuid.UUID, start time.Time, d time.Duration) *appointment.Appointment {
	t.Helper()
	interval, err := appointment.NewInterval(start, start.Add(d))
	require.NoError(t, err)
	return appointment.NewAppointment(barberID, uuid.New(), uuid.New(), interval, "")
}

func TestClassify(t *testing.T) {
	f := newFixture(t)

	t.Run("bookable slot", func(t *testing.T) {
		v, err := booking.Classify(f.windows, f.timeOff, f.existing, at(10, 0), at(10, 30))
		require.NoError(t, err)
		assert.True(t, v.IsBookable())
	})

	t.Run("outside working hours", func(t *testing.T) {
		v, err := booking.Classify(f.windows, f.timeOff, f.existing, at(8, 0), at(8, 30))
		require.NoError(t, err)
		require.False(t, v.IsBookable())
		assert.Equal(t, booking.ReasonOutsideWorkingHours, v.Reason())
		assert.NotEmpty(t, v.Detail())
	})

	t.Run("start at opening and closing bounds is accepted", func(t *testing.T) {
		v, err := booking.Classify(f.windows, f.timeOff, f.existing, at(9, 0), at(9, 30))
		require.NoError(t, err)
		assert.True(t, v.IsBookable())

		// The start instant alone is checked; the end running past the
		// window does not reject.
		v, err = booking.Classify(f.windows, f.timeOff, f.existing, at(18, 0), at(18, 30))
		require.NoError(t, err)
		assert.True(t, v.IsBookable())
	})

	t.Run("time off conflict", func(t *testing.T) {
		v, err := booking.Classify(f.windows, f.timeOff, f.existing, at(12, 30), at(13, 0))
		require.NoError(t, err)
		require.False(t, v.IsBookable())
		assert.Equal(t, booking.ReasonTimeOffConflict, v.Reason())
	})

	t.Run("slot conflict", func(t *testing.T) {
		v, err := booking.Classify(f.windows, f.timeOff, f.existing, at(15, 15), at(15, 45))
		require.NoError(t, err)
		require.False(t, v.IsBookable())
		assert.Equal(t, booking.ReasonSlotConflict, v.Reason())
	})

	t.Run("back to back with booked slot is allowed", func(t *testing.T) {
		v, err := booking.Classify(f.windows, f.timeOff, f.existing, at(15, 30), at(16, 0))
		require.NoError(t, err)
		assert.True(t, v.IsBookable())
	})

	t.Run("working hours outrank time off", func(t *testing.T) {
		// Before opening AND during a (hypothetical) early time off: the
		// working-hours reason must win.
		off, err := schedule.NewTimeOffPeriod(uuid.New(), at(7, 0), at(9, 0), "")
		require.NoError(t, err)

		v, err := booking.Classify(f.windows, []schedule.TimeOffPeriod{off}, f.existing, at(8, 0), at(8, 30))
		require.NoError(t, err)
		require.False(t, v.IsBookable())
		assert.Equal(t, booking.ReasonOutsideWorkingHours, v.Reason())
	})

	t.Run("time off outranks slot conflict", func(t *testing.T) {
		off, err := schedule.NewTimeOffPeriod(uuid.New(), at(14, 30), at(16, 0), "")
		require.NoError(t, err)

		v, err := booking.Classify(f.windows, []schedule.TimeOffPeriod{off}, f.existing, at(15, 0), at(15, 30))
		require.NoError(t, err)
		require.False(t, v.IsBookable())
		assert.Equal(t, booking.ReasonTimeOffConflict, v.Reason())
	})

	t.Run("cancelled appointments do not block", func(t *testing.T) {
		cancelled := bookedAppointment(t, uuid.New(), at(10, 0), 30*time.Minute)
		require.NoError(t, cancelled.Cancel())

		v, err := booking.Classify(f.windows, f.timeOff, []*appointment.Appointment{cancelled}, at(10, 0), at(10, 30))
		require.NoError(t, err)
		assert.True(t, v.IsBookable())
	})

	t.Run("malformed candidate fails fast", func(t *testing.T) {
		_, err := booking.Classify(f.windows, f.timeOff, f.existing, at(10, 0), at(10, 0))
		assert.ErrorIs(t, err, appointment.ErrInvalidInterval)
	})

	t.Run("same inputs same verdict", func(t *testing.T) {
		v1, err := booking.Classify(f.windows, f.timeOff, f.existing, at(15, 15), at(15, 45))
		require.NoError(t, err)
		v2, err := booking.Classify(f.windows, f.timeOff, f.existing, at(15, 15), at(15, 45))
		require.NoError(t, err)
		assert.Equal(t, v1, v2)
	})
}
