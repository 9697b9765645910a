// Package booking decides whether a candidate appointment interval is
// bookable against a barber's working hours, time off and existing
// appointments. It is pure: all inputs arrive as immutable snapshots and
// the same inputs always produce the same verdict.
package booking

import (
	"fmt"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/appointment"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/schedule"
)

// Reason is the closed rejection taxonomy. The strings are a contract
// with callers (and with the store, which reports the same reasons for
// rejections it detects itself), so they must stay stable.
type Reason string

const (
	ReasonOutsideWorkingHours Reason = "OUTSIDE_WORKING_HOURS"
	ReasonTimeOffConflict     Reason = "TIME_OFF_CONFLICT"
	ReasonSlotConflict        Reason = "SLOT_CONFLICT"
)

func (r Reason) String() string {
	return string(r)
}

// Verdict is the outcome of classifying one candidate interval. It is a
// value, never persisted.
type Verdict struct {
	rejected bool
	reason   Reason
	detail   string
}

func Bookable() Verdict {
	return Verdict{}
}

func Rejected(reason Reason, detail string) Verdict {
	return Verdict{rejected: true, reason: reason, detail: detail}
}

func (v Verdict) IsBookable() bool { return !v.rejected }
func (v Verdict) Reason() Reason   { return v.reason }
func (v Verdict) Detail() string   { return v.detail }

// Classify runs the checks in fixed precedence: working hours, then time
// off, then slot collision. The order is a user-facing contract (it
// determines which message the user sees when several checks would fail)
// and also runs the cheap calendar checks before scanning appointments.
//
// Working hours are validated for the start instant only; see
// schedule.IsWithinWorkingHours. A malformed candidate (end before start)
// is a caller bug and fails fast instead of yielding a verdict.
func Classify(
	windows []schedule.WorkingWindow,
	timeOff []schedule.TimeOffPeriod,
	existing []*appointment.Appointment,
	start, end time.Time,
) (Verdict, error) {
	candidate, err := appointment.NewInterval(start, end)
	if err != nil {
		return Verdict{}, err
	}

	if !schedule.IsWithinWorkingHours(windows, start) {
		return Rejected(ReasonOutsideWorkingHours,
			fmt.Sprintf("no working window covers %s on %s", schedule.TimeOfDayFrom(start), schedule.WeekdayOf(start))), nil
	}

	if schedule.OverlapsAny(timeOff, start, end) {
		return Rejected(ReasonTimeOffConflict,
			fmt.Sprintf("barber is off during [%s, %s)", start.Format(time.RFC3339), end.Format(time.RFC3339))), nil
	}

	for _, appt := range existing {
		if !appt.BlocksSlot() {
			continue
		}
		if appt.Interval().Overlaps(candidate) {
			return Rejected(ReasonSlotConflict,
				fmt.Sprintf("slot already taken by appointment %s", appt.ID())), nil
		}
	}

	return Bookable(), nil
}
