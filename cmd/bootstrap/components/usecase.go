package components

import (
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/clock"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/config"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.BookingConfig {
		return cfg.Booking
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBarberCommands,
		commands.NewServiceCommands,
		commands.NewClientCommands,
		commands.NewAppointmentCommands,
		commands.NewScheduleCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewAgendaQueries,
		queries.NewAvailabilityQueries,
		queries.NewScheduleQueries,
		queries.NewNotificationQueries,
	),
)
