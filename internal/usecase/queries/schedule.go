package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ScheduleReadStore interface {
	FindWorkingHoursByBarber(ctx context.Context, barberID uuid.UUID) ([]*WorkingHoursView, error)
	FindTimeOffByBarber(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]*TimeOffView, error)
}

// ScheduleQueries serves the schedule management screen: the weekly
// working-hours table and the time-off list per barber.
type ScheduleQueries interface {
	ListWorkingHours(ctx context.Context, barberID uuid.UUID) ([]*WorkingHoursView, error)
	ListTimeOff(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]*TimeOffView, error)
}

type scheduleQueriesImpl struct {
	store ScheduleReadStore
}

func NewScheduleQueries(store ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{store: store}
}

func (q *scheduleQueriesImpl) ListWorkingHours(ctx context.Context, barberID uuid.UUID) ([]*WorkingHoursView, error) {
	return q.store.FindWorkingHoursByBarber(ctx, barberID)
}

func (q *scheduleQueriesImpl) ListTimeOff(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]*TimeOffView, error) {
	return q.store.FindTimeOffByBarber(ctx, barberID, from, to)
}
