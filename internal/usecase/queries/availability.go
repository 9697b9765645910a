package queries

import (
	"context"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/appointment"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/booking"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/schedule"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/clock"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/config"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type ServiceReadStore interface {
	FindAll(ctx context.Context) ([]*ServiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

// ScheduleSnapshotStore hands out immutable schedule snapshots for one
// barber, in domain form so the classifier can consume them directly.
type ScheduleSnapshotStore interface {
	WorkingWindows(ctx context.Context, barberID uuid.UUID) ([]schedule.WorkingWindow, error)
	TimeOffInRange(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]schedule.TimeOffPeriod, error)
}

// BookedIntervalStore returns the appointments that still block their
// slot (CANCELLED ones are filtered out at the store).
type BookedIntervalStore interface {
	BlockingInRange(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]*appointment.Appointment, error)
}

type AvailabilityQueries interface {
	// DaySlots returns the offerable "HH:mm" start times for the service
	// on the given date.
	DaySlots(ctx context.Context, barberID, serviceID uuid.UUID, date time.Time) ([]string, error)
}

type availabilityQueriesImpl struct {
	barbers  BarberReadStore
	services ServiceReadStore
	sched    ScheduleSnapshotStore
	booked   BookedIntervalStore
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewAvailabilityQueries(
	barbers BarberReadStore,
	services ServiceReadStore,
	sched ScheduleSnapshotStore,
	booked BookedIntervalStore,
	clk clock.Clock,
	cfg config.BookingConfig,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		barbers:  barbers,
		services: services,
		sched:    sched,
		booked:   booked,
		clock:    clk,
		cfg:      cfg,
	}
}

func (q *availabilityQueriesImpl) DaySlots(ctx context.Context, barberID, serviceID uuid.UUID, date time.Time) ([]string, error) {
	barberView, err := q.barbers.FindByID(ctx, barberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBarberNotFound)
		}
		return nil, err
	}
	if !barberView.Active {
		return nil, errs.ErrBarberInactive
	}

	svc, err := q.services.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, err
	}
	if !svc.Active {
		return nil, errs.ErrServiceInactive
	}

	loc := date.Location()
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	windows, err := q.sched.WorkingWindows(ctx, barberID)
	if err != nil {
		return nil, err
	}
	timeOff, err := q.sched.TimeOffInRange(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	existing, err := q.booked.BlockingInRange(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(svc.DurationMin) * time.Minute
	// Buffer keeps the next offerable slot clear of the service block.
	spacing := duration + time.Duration(svc.BufferAfterMin)*time.Minute
	now := q.clock.Now()

	slots := []string{}
	for _, tod := range schedule.Slots(q.cfg.SlotGranularityMin) {
		start := tod.At(dayStart, loc)
		if start.Before(now) {
			continue
		}

		verdict, err := booking.Classify(windows, timeOff, existing, start, start.Add(spacing))
		if err != nil {
			return nil, err
		}
		if verdict.IsBookable() {
			slots = append(slots, tod.String())
		}
	}
	return slots, nil
}
