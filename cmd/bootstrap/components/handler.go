package components

import (
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBarberHandler,
		api.NewServiceHandler,
		api.NewClientHandler,
		api.NewScheduleHandler,
		api.NewAppointmentHandler,
		api.NewAvailabilityHandler,
		api.NewNotificationHandler,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	barber *api.BarberHandler,
	service *api.ServiceHandler,
	client *api.ClientHandler,
	schedule *api.ScheduleHandler,
	appointment *api.AppointmentHandler,
	availability *api.AvailabilityHandler,
	notification *api.NotificationHandler,
) handler.Handlers {
	return handler.Handlers{
		Barber:       barber,
		Service:      service,
		Client:       client,
		Schedule:     schedule,
		Appointment:  appointment,
		Availability: availability,
		Notification: notification,
	}
}
