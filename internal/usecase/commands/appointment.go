package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/appointment"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/booking"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/notification"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateAppointmentParams struct {
	BarberID  uuid.UUID
	ServiceID uuid.UUID
	ClientID  uuid.UUID
	StartsAt  time.Time
	Notes     string
}

type AppointmentCommands interface {
	Create(ctx context.Context, params CreateAppointmentParams) (*queries.AppointmentView, error)
	Confirm(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error)
	Cancel(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error)
	Complete(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error)
}

type appointmentCommandsImpl struct {
	appointments  AppointmentRepository
	barbers       BarberRepository
	services      ServiceRepository
	clients       ClientRepository
	schedules     ScheduleRepository
	notifications NotificationRepository
	reader        queries.AppointmentReadStore
}

func NewAppointmentCommands(
	appointments AppointmentRepository,
	barbers BarberRepository,
	services ServiceRepository,
	clients ClientRepository,
	schedules ScheduleRepository,
	notifications NotificationRepository,
	reader queries.AppointmentReadStore,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		appointments:  appointments,
		barbers:       barbers,
		services:      services,
		clients:       clients,
		schedules:     schedules,
		notifications: notifications,
		reader:        reader,
	}
}

// Create books a new appointment. The classifier runs as a client-side
// pre-check; the exclusion constraint on the appointments table is the
// authoritative collision check, and losing that race surfaces as the
// same SLOT_CONFLICT as a locally detected collision.
func (c *appointmentCommandsImpl) Create(ctx context.Context, params CreateAppointmentParams) (*queries.AppointmentView, error) {
	barberEntity, err := c.barbers.FindByID(ctx, params.BarberID)
	if err != nil {
		return nil, markNotFound(err, errs.ErrBarberNotFound)
	}
	if !barberEntity.IsActive() {
		return nil, errs.ErrBarberInactive
	}

	svc, err := c.services.FindByID(ctx, params.ServiceID)
	if err != nil {
		return nil, markNotFound(err, errs.ErrServiceNotFound)
	}
	if !svc.IsActive() {
		return nil, errs.ErrServiceInactive
	}

	clientEntity, err := c.clients.FindByID(ctx, params.ClientID)
	if err != nil {
		return nil, markNotFound(err, errs.ErrClientNotFound)
	}

	start := params.StartsAt
	end := start.Add(svc.Duration())

	windows, err := c.schedules.WorkingWindows(ctx, params.BarberID)
	if err != nil {
		return nil, err
	}
	timeOff, err := c.schedules.TimeOffInRange(ctx, params.BarberID, start, end)
	if err != nil {
		return nil, err
	}
	existing, err := c.appointments.BlockingInRange(ctx, params.BarberID, start, end)
	if err != nil {
		return nil, err
	}

	verdict, err := booking.Classify(windows, timeOff, existing, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInterval)
	}
	if !verdict.IsBookable() {
		return nil, rejectionError(verdict)
	}

	interval, err := appointment.NewInterval(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInterval)
	}
	appt := appointment.NewAppointment(params.BarberID, params.ServiceID, params.ClientID, interval, params.Notes)

	if err := c.appointments.Create(ctx, appt); err != nil {
		// The store's own rejection must look identical to ours.
		if infra.IsKind(err, infra.KindExclusionViolated) {
			return nil, errs.Mark(err, errs.ErrSlotConflict)
		}
		return nil, err
	}

	c.notify(ctx, notification.TypeAppointment, "New appointment",
		fmt.Sprintf("%s booked %s with %s at %s",
			clientEntity.Name(), svc.Name(), barberEntity.Name(), start.Format("02/01/2006 15:04")),
		"event")

	return c.reader.FindByID(ctx, appt.ID())
}

func (c *appointmentCommandsImpl) Confirm(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	return c.transition(ctx, id, (*appointment.Appointment).Confirm, "Appointment confirmed")
}

func (c *appointmentCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	return c.transition(ctx, id, (*appointment.Appointment).Cancel, "Appointment cancelled")
}

func (c *appointmentCommandsImpl) Complete(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	return c.transition(ctx, id, (*appointment.Appointment).Complete, "Appointment completed")
}

func (c *appointmentCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	change func(*appointment.Appointment) error,
	title string,
) (*queries.AppointmentView, error) {
	appt, err := c.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrAppointmentNotFound)
	}

	if err := change(appt); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStatusChange)
	}

	if err := c.appointments.UpdateStatus(ctx, appt); err != nil {
		return nil, err
	}

	c.notify(ctx, notification.TypeAppointment, title,
		fmt.Sprintf("Appointment at %s is now %s",
			appt.Interval().Start().Format("02/01/2006 15:04"), appt.Status()),
		"event_note")

	return c.reader.FindByID(ctx, id)
}

// notify records a feed entry; a failure here never fails the command.
func (c *appointmentCommandsImpl) notify(ctx context.Context, kind notification.Type, title, message, icon string) {
	n, err := notification.NewNotification(kind, title, message, icon, "")
	if err != nil {
		slog.Warn("skipping malformed notification", "title", title, "error", err)
		return
	}
	if err := c.notifications.Create(ctx, n); err != nil {
		slog.Warn("failed to store notification", "title", title, "error", err)
	}
}

func rejectionError(v booking.Verdict) error {
	base := errs.New(v.Detail())
	switch v.Reason() {
	case booking.ReasonOutsideWorkingHours:
		return errs.Mark(base, errs.ErrOutsideWorkingHours)
	case booking.ReasonTimeOffConflict:
		return errs.Mark(base, errs.ErrTimeOffConflict)
	case booking.ReasonSlotConflict:
		return errs.Mark(base, errs.ErrSlotConflict)
	default:
		return base
	}
}

func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
