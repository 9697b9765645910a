package commands

import (
	"context"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/schedule"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type WorkingWindowParams struct {
	BarberID  uuid.UUID
	DayOfWeek int
	StartTime string
	EndTime   string
}

type TimeOffParams struct {
	BarberID uuid.UUID
	StartsAt time.Time
	EndsAt   time.Time
	Reason   string
}

type ScheduleCommands interface {
	AddWorkingWindow(ctx context.Context, params WorkingWindowParams) ([]*queries.WorkingHoursView, error)
	RemoveWorkingWindow(ctx context.Context, barberID, windowID uuid.UUID) error
	AddTimeOff(ctx context.Context, params TimeOffParams) (uuid.UUID, error)
	RemoveTimeOff(ctx context.Context, barberID, timeOffID uuid.UUID) error
}

type scheduleCommandsImpl struct {
	repo    ScheduleRepository
	barbers BarberRepository
	reader  queries.ScheduleReadStore
}

func NewScheduleCommands(repo ScheduleRepository, barbers BarberRepository, reader queries.ScheduleReadStore) ScheduleCommands {
	return &scheduleCommandsImpl{repo: repo, barbers: barbers, reader: reader}
}

// AddWorkingWindow appends a weekly window and returns the barber's full
// working-hours table so the caller can redraw it in one round trip.
func (c *scheduleCommandsImpl) AddWorkingWindow(ctx context.Context, params WorkingWindowParams) ([]*queries.WorkingHoursView, error) {
	if _, err := c.barbers.FindByID(ctx, params.BarberID); err != nil {
		return nil, markNotFound(err, errs.ErrBarberNotFound)
	}

	start, err := schedule.ParseTimeOfDay(params.StartTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	end, err := schedule.ParseTimeOfDay(params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	weekday, err := schedule.NewWeekday(params.DayOfWeek)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	window, err := schedule.NewWorkingWindow(params.BarberID, weekday, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.CreateWorkingWindow(ctx, window); err != nil {
		return nil, err
	}

	return c.reader.FindWorkingHoursByBarber(ctx, params.BarberID)
}

func (c *scheduleCommandsImpl) RemoveWorkingWindow(ctx context.Context, barberID, windowID uuid.UUID) error {
	if _, err := c.barbers.FindByID(ctx, barberID); err != nil {
		return markNotFound(err, errs.ErrBarberNotFound)
	}
	if err := c.repo.DeleteWorkingWindow(ctx, windowID); err != nil {
		return markNotFound(err, errs.ErrWorkingHoursNotFound)
	}
	return nil
}

func (c *scheduleCommandsImpl) AddTimeOff(ctx context.Context, params TimeOffParams) (uuid.UUID, error) {
	if _, err := c.barbers.FindByID(ctx, params.BarberID); err != nil {
		return uuid.Nil, markNotFound(err, errs.ErrBarberNotFound)
	}

	period, err := schedule.NewTimeOffPeriod(params.BarberID, params.StartsAt, params.EndsAt, params.Reason)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.CreateTimeOff(ctx, period); err != nil {
		return uuid.Nil, err
	}
	return period.ID(), nil
}

func (c *scheduleCommandsImpl) RemoveTimeOff(ctx context.Context, barberID, timeOffID uuid.UUID) error {
	if _, err := c.barbers.FindByID(ctx, barberID); err != nil {
		return markNotFound(err, errs.ErrBarberNotFound)
	}
	if err := c.repo.DeleteTimeOff(ctx, timeOffID); err != nil {
		return markNotFound(err, errs.ErrTimeOffNotFound)
	}
	return nil
}
