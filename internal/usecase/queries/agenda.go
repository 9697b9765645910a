package queries

import (
	"context"
	"sync"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

// AppointmentReadStore is the per-barber read side of the booking store.
// Each call fails independently; the aggregator relies on that.
type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByBarberInRange(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]*AppointmentView, error)
}

type BarberReadStore interface {
	FindAll(ctx context.Context) ([]*BarberView, error)
	FindActive(ctx context.Context) ([]*BarberView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BarberView, error)
}

// AgendaResult carries merged appointments plus the per-barber failures,
// so a caller can render partial data instead of dropping everything when
// one barber's query fails. Appointments carry no ordering guarantee;
// re-sort by start time if display needs one.
type AgendaResult struct {
	Appointments []*AppointmentView
	Failed       map[uuid.UUID]error
}

// PartialFailure reports whether some (but not necessarily all) barber
// queries failed.
func (r *AgendaResult) PartialFailure() bool {
	return len(r.Failed) > 0
}

type AgendaQueries interface {
	// ListRange fetches appointments in [from,to) for one barber, or for
	// every active barber when barberID is nil.
	ListRange(ctx context.Context, barberID *uuid.UUID, from, to time.Time) (*AgendaResult, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
}

type agendaQueriesImpl struct {
	appointments AppointmentReadStore
	barbers      BarberReadStore
}

func NewAgendaQueries(appointments AppointmentReadStore, barbers BarberReadStore) AgendaQueries {
	return &agendaQueriesImpl{
		appointments: appointments,
		barbers:      barbers,
	}
}

func (q *agendaQueriesImpl) ListRange(ctx context.Context, barberID *uuid.UUID, from, to time.Time) (*AgendaResult, error) {
	if barberID != nil {
		appointments, err := q.appointments.FindByBarberInRange(ctx, *barberID, from, to)
		if err != nil {
			return nil, err
		}
		return &AgendaResult{Appointments: appointments, Failed: map[uuid.UUID]error{}}, nil
	}

	barbers, err := q.barbers.FindActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active barbers")
	}

	return q.fanOut(ctx, barbers, from, to), nil
}

// fanOut issues one independent query per barber and joins them all. A
// failing barber must not cancel or block the rest: each goroutine writes
// to its own slot and the WaitGroup barrier collects whatever settled.
func (q *agendaQueriesImpl) fanOut(ctx context.Context, barbers []*BarberView, from, to time.Time) *AgendaResult {
	result := &AgendaResult{
		Appointments: []*AppointmentView{},
		Failed:       map[uuid.UUID]error{},
	}
	if len(barbers) == 0 {
		return result
	}

	type slot struct {
		appointments []*AppointmentView
		err          error
	}
	slots := make([]slot, len(barbers))

	var wg sync.WaitGroup
	for i, b := range barbers {
		wg.Add(1)
		go func(i int, barberID uuid.UUID) {
			defer wg.Done()
			appointments, err := q.appointments.FindByBarberInRange(ctx, barberID, from, to)
			slots[i] = slot{appointments: appointments, err: err}
		}(i, b.ID)
	}
	wg.Wait()

	for i, b := range barbers {
		if slots[i].err != nil {
			result.Failed[b.ID] = slots[i].err
			continue
		}
		result.Appointments = append(result.Appointments, slots[i].appointments...)
	}
	return result
}

func (q *agendaQueriesImpl) GetAppointment(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.appointments.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAppointmentNotFound)
		}
		return nil, err
	}
	return view, nil
}
