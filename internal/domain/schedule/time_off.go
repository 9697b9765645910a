package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrTimeOffNotOrdered = errors.New("time off start must be before end")

// TimeOffPeriod is an absolute-dated interval during which a barber is
// unavailable regardless of working hours.
type TimeOffPeriod struct {
	id       uuid.UUID
	barberID uuid.UUID
	start    time.Time
	end      time.Time
	reason   string
}

func NewTimeOffPeriod(barberID uuid.UUID, start, end time.Time, reason string) (TimeOffPeriod, error) {
	if !start.Before(end) {
		return TimeOffPeriod{}, ErrTimeOffNotOrdered
	}
	return TimeOffPeriod{
		id:       uuid.New(),
		barberID: barberID,
		start:    start,
		end:      end,
		reason:   reason,
	}, nil
}

func ReconstructTimeOffPeriod(id, barberID uuid.UUID, start, end time.Time, reason string) TimeOffPeriod {
	return TimeOffPeriod{id: id, barberID: barberID, start: start, end: end, reason: reason}
}

func (p TimeOffPeriod) ID() uuid.UUID       { return p.id }
func (p TimeOffPeriod) BarberID() uuid.UUID { return p.barberID }
func (p TimeOffPeriod) Start() time.Time    { return p.start }
func (p TimeOffPeriod) End() time.Time      { return p.end }
func (p TimeOffPeriod) Reason() string      { return p.reason }

// Overlaps reports whether [start,end) collides with the period. The rule
// covers a start inside the period, an end inside the period, and the
// candidate fully covering the period. Touching edges do not collide: an
// appointment ending exactly when time off starts, or starting exactly
// when it ends, is allowed.
func (p TimeOffPeriod) Overlaps(start, end time.Time) bool {
	startsInside := !start.Before(p.start) && start.Before(p.end)
	endsInside := end.After(p.start) && !end.After(p.end)
	covers := !start.After(p.start) && !end.Before(p.end)
	return startsInside || endsInside || covers
}

// OverlapsAny reports whether the candidate interval collides with any of
// the periods, stopping at the first hit. Order among periods is
// irrelevant.
func OverlapsAny(periods []TimeOffPeriod, start, end time.Time) bool {
	for _, p := range periods {
		if p.Overlaps(start, end) {
			return true
		}
	}
	return false
}
