package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("time of day must be in HH:mm format between 00:00 and 23:59")

// TimeOfDay is a wall-clock minute within a day, no date and no timezone
// attached. Working-hours rows store their bounds in this form.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay accepts the "HH:mm" form used on the wire and in the
// working_hours table.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

// TimeOfDayFrom extracts the wall-clock component of an instant, in the
// instant's own location.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

func (t TimeOfDay) Hour() int        { return t.minutes / 60 }
func (t TimeOfDay) Minute() int      { return t.minutes % 60 }
func (t TimeOfDay) MinuteOfDay() int { return t.minutes }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.minutes > other.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// At anchors the time of day to a calendar date in the given location.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}
