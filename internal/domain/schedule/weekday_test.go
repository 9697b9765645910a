//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	// 2025-10-20 is a Monday.
	monday := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

	expected := []schedule.Weekday{
		schedule.Monday,
		schedule.Tuesday,
		schedule.Wednesday,
		schedule.Thursday,
		schedule.Friday,
		schedule.Saturday,
		schedule.Sunday,
	}
	for i, want := range expected {
		day := monday.AddDate(0, 0, i)
		assert.Equal(t, want, schedule.WeekdayOf(day), day.Format("2006-01-02"))
	}
}

func TestWeekdayOf_SundayIsSeven(t *testing.T) {
	// Go numbers Sunday 0; the schedule numbering puts it last.
	sunday := time.Date(2025, 10, 26, 9, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())
	assert.Equal(t, schedule.Sunday, schedule.WeekdayOf(sunday))
	assert.Equal(t, 7, int(schedule.WeekdayOf(sunday)))
}

func TestNewWeekday(t *testing.T) {
	for n := 1; n <= 7; n++ {
		w, err := schedule.NewWeekday(n)
		require.NoError(t, err)
		assert.True(t, w.IsValid())
	}

	for _, n := range []int{0, 8, -1} {
		_, err := schedule.NewWeekday(n)
		assert.ErrorIs(t, err, schedule.ErrInvalidWeekday)
	}
}

func TestSlots(t *testing.T) {
	t.Run("15 minute granularity yields 96 slots", func(t *testing.T) {
		slots := schedule.Slots(15)
		require.Len(t, slots, 96)
		assert.Equal(t, "00:00", slots[0].String())
		assert.Equal(t, "00:15", slots[1].String())
		assert.Equal(t, "23:45", slots[95].String())
	})

	t.Run("60 minute granularity yields 24 slots", func(t *testing.T) {
		slots := schedule.Slots(60)
		require.Len(t, slots, 24)
		assert.Equal(t, "09:00", slots[9].String())
	})

	t.Run("invalid granularity yields nil", func(t *testing.T) {
		assert.Nil(t, schedule.Slots(0))
		assert.Nil(t, schedule.Slots(-15))
		assert.Nil(t, schedule.Slots(24*60+1))
	})
}

func TestTimeOfDay(t *testing.T) {
	t.Run("parse and format round trip", func(t *testing.T) {
		tod, err := schedule.ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, tod.Hour())
		assert.Equal(t, 30, tod.Minute())
		assert.Equal(t, "09:30", tod.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"", "9:3", "24:00", "12:60", "noon"} {
			_, err := schedule.ParseTimeOfDay(s)
			assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay, s)
		}
	})

	t.Run("anchors to a date", func(t *testing.T) {
		tod, err := schedule.NewTimeOfDay(14, 45)
		require.NoError(t, err)

		date := time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC)
		at := tod.At(date, time.UTC)
		assert.Equal(t, time.Date(2025, 10, 25, 14, 45, 0, 0, time.UTC), at)
	})
}
