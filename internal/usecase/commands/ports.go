package commands

import (
	"context"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/appointment"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/barber"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/client"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/notification"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/schedule"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/service"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra/repository.

type BarberRepository interface {
	Create(ctx context.Context, b *barber.Barber) error
	Update(ctx context.Context, b *barber.Barber) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*barber.Barber, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s *service.Service) error
	Update(ctx context.Context, s *service.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
}

type ClientRepository interface {
	Create(ctx context.Context, c *client.Client) error
	Update(ctx context.Context, c *client.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *appointment.Appointment) error
	UpdateStatus(ctx context.Context, a *appointment.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	// BlockingInRange returns the barber's non-cancelled appointments
	// overlapping [from,to).
	BlockingInRange(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]*appointment.Appointment, error)
}

type ScheduleRepository interface {
	CreateWorkingWindow(ctx context.Context, w schedule.WorkingWindow) error
	DeleteWorkingWindow(ctx context.Context, id uuid.UUID) error
	WorkingWindows(ctx context.Context, barberID uuid.UUID) ([]schedule.WorkingWindow, error)

	CreateTimeOff(ctx context.Context, p schedule.TimeOffPeriod) error
	DeleteTimeOff(ctx context.Context, id uuid.UUID) error
	TimeOffInRange(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]schedule.TimeOffPeriod, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context) (int64, error)
}
