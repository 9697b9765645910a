package schedule

import (
	"errors"
	"time"
)

var ErrInvalidWeekday = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")

// Weekday numbers days ISO-8601 style: Monday=1 .. Sunday=7. This is the
// numbering working-hours rows are authored with. It is intentionally a
// different convention from the Sunday-first numbering the calendar grid
// uses; the two meet only in WeekdayOf.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func NewWeekday(n int) (Weekday, error) {
	if n < 1 || n > 7 {
		return 0, ErrInvalidWeekday
	}
	return Weekday(n), nil
}

// WeekdayOf converts the instant's Go weekday (Sunday=0) to the ISO
// numbering. This is the single conversion point between the two
// day-of-week conventions.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday())+6)%7 + 1)
}

func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	switch w {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	default:
		return "Invalid"
	}
}
