//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start time.Time, d time.Duration) appointment.Interval {
	t.Helper()
	i, err := appointment.NewInterval(start, start.Add(d))
	require.NoError(t, err)
	return i
}

func TestNewInterval(t *testing.T) {
	start := time.Date(2025, 10, 25, 10, 0, 0, 0, time.UTC)

	_, err := appointment.NewInterval(start, start.Add(30*time.Minute))
	require.NoError(t, err)

	_, err = appointment.NewInterval(start, start)
	assert.ErrorIs(t, err, appointment.ErrInvalidInterval)

	_, err = appointment.NewInterval(start, start.Add(-time.Minute))
	assert.ErrorIs(t, err, appointment.ErrInvalidInterval)
}

func TestIntervalOverlaps(t *testing.T) {
	base := time.Date(2025, 10, 25, 10, 0, 0, 0, time.UTC)
	booked := mustInterval(t, base, time.Hour)

	cases := []struct {
		name  string
		other appointment.Interval
		want  bool
	}{
		{"identical", mustInterval(t, base, time.Hour), true},
		{"starts inside", mustInterval(t, base.Add(30*time.Minute), time.Hour), true},
		{"ends inside", mustInterval(t, base.Add(-30*time.Minute), time.Hour), true},
		{"covers", mustInterval(t, base.Add(-30*time.Minute), 2*time.Hour), true},
		{"back to back after", mustInterval(t, base.Add(time.Hour), time.Hour), false},
		{"back to back before", mustInterval(t, base.Add(-time.Hour), time.Hour), false},
		{"disjoint", mustInterval(t, base.Add(3*time.Hour), time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.other.Overlaps(booked))
		})
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	newAppt := func(t *testing.T) *appointment.Appointment {
		t.Helper()
		start := time.Date(2025, 10, 25, 10, 0, 0, 0, time.UTC)
		return appointment.NewAppointment(uuid.New(), uuid.New(), uuid.New(),
			mustInterval(t, start, 30*time.Minute), "")
	}

	t.Run("starts pending and blocks its slot", func(t *testing.T) {
		appt := newAppt(t)
		assert.Equal(t, appointment.StatusPending, appt.Status())
		assert.True(t, appt.BlocksSlot())
	})

	t.Run("confirm then complete", func(t *testing.T) {
		appt := newAppt(t)
		require.NoError(t, appt.Confirm())
		assert.Equal(t, appointment.StatusConfirmed, appt.Status())
		assert.True(t, appt.BlocksSlot())

		require.NoError(t, appt.Complete())
		assert.Equal(t, appointment.StatusCompleted, appt.Status())
		assert.True(t, appt.BlocksSlot())
	})

	t.Run("cancelled appointments release their slot", func(t *testing.T) {
		appt := newAppt(t)
		require.NoError(t, appt.Cancel())
		assert.Equal(t, appointment.StatusCancelled, appt.Status())
		assert.False(t, appt.BlocksSlot())
	})

	t.Run("terminal states reject further transitions", func(t *testing.T) {
		cancelled := newAppt(t)
		require.NoError(t, cancelled.Cancel())
		assert.ErrorIs(t, cancelled.Confirm(), appointment.ErrAlreadyTerminal)
		assert.ErrorIs(t, cancelled.Cancel(), appointment.ErrAlreadyTerminal)

		completed := newAppt(t)
		require.NoError(t, completed.Complete())
		assert.ErrorIs(t, completed.Cancel(), appointment.ErrAlreadyTerminal)
		assert.ErrorIs(t, completed.Complete(), appointment.ErrAlreadyTerminal)
	})
}

func TestReconstructAppointment(t *testing.T) {
	start := time.Date(2025, 10, 25, 10, 0, 0, 0, time.UTC)
	interval := mustInterval(t, start, 30*time.Minute)

	_, err := appointment.ReconstructAppointment(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		interval, appointment.Status("BOOKED"), "", start, start,
	)
	assert.ErrorIs(t, err, appointment.ErrInvalidStatus)

	appt, err := appointment.ReconstructAppointment(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		interval, appointment.StatusConfirmed, "walk-in", start, start,
	)
	require.NoError(t, err)
	assert.Equal(t, appointment.StatusConfirmed, appt.Status())
	assert.Equal(t, "walk-in", appt.Notes())
}
