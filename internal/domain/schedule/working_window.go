package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrWindowNotOrdered = errors.New("working window start must be before end")
)

// WorkingWindow is one recurring weekly availability interval for a barber.
// A barber may have several windows on the same weekday (e.g. a morning and
// an afternoon block); each is a distinct record. A window never crosses
// midnight.
type WorkingWindow struct {
	id       uuid.UUID
	barberID uuid.UUID
	weekday  Weekday
	start    TimeOfDay
	end      TimeOfDay
}

func NewWorkingWindow(barberID uuid.UUID, weekday Weekday, start, end TimeOfDay) (WorkingWindow, error) {
	if !weekday.IsValid() {
		return WorkingWindow{}, ErrInvalidWeekday
	}
	if !start.Before(end) {
		return WorkingWindow{}, ErrWindowNotOrdered
	}
	return WorkingWindow{
		id:       uuid.New(),
		barberID: barberID,
		weekday:  weekday,
		start:    start,
		end:      end,
	}, nil
}

func ReconstructWorkingWindow(id, barberID uuid.UUID, weekday Weekday, start, end TimeOfDay) WorkingWindow {
	return WorkingWindow{id: id, barberID: barberID, weekday: weekday, start: start, end: end}
}

func (w WorkingWindow) ID() uuid.UUID       { return w.id }
func (w WorkingWindow) BarberID() uuid.UUID { return w.barberID }
func (w WorkingWindow) Weekday() Weekday    { return w.weekday }
func (w WorkingWindow) Start() TimeOfDay    { return w.start }
func (w WorkingWindow) End() TimeOfDay      { return w.end }

// Contains reports whether the wall-clock time lies within the window.
// Both bounds are inclusive: an appointment may start exactly at opening
// or exactly at closing time.
func (w WorkingWindow) Contains(t TimeOfDay) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

// IsWithinWorkingHours reports whether the instant falls inside any of the
// barber's windows for that day. No windows on the instant's weekday means
// the barber does not work that day.
//
// Only the instant itself is checked. For a candidate appointment that is
// its start time; the end may legally run past the window (an appointment
// starting one minute before closing is accepted). Callers relying on the
// end being inside the window must check it themselves.
func IsWithinWorkingHours(windows []WorkingWindow, at time.Time) bool {
	day := WeekdayOf(at)
	tod := TimeOfDayFrom(at)
	for _, w := range windows {
		if w.weekday != day {
			continue
		}
		if w.Contains(tod) {
			return true
		}
	}
	return false
}
