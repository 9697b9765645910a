package components

import (
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra/readstore"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra/repository"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	repositoryModule,
	readstoreModule,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		repository.NewBarberRepository,
		repository.NewServiceRepository,
		repository.NewClientRepository,
		repository.NewAppointmentRepository,
		repository.NewScheduleRepository,
		repository.NewNotificationRepository,
		// The write repositories double as the schedule snapshot and
		// blocking-interval read sides; same tables, same predicates.
		asScheduleSnapshotStore,
		asBookedIntervalStore,
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewBarberReadStore,
		readstore.NewServiceReadStore,
		readstore.NewClientReadStore,
		readstore.NewAppointmentReadStore,
		readstore.NewScheduleReadStore,
		readstore.NewNotificationReadStore,
	),
)

func asScheduleSnapshotStore(r commands.ScheduleRepository) queries.ScheduleSnapshotStore {
	return r
}

func asBookedIntervalStore(r commands.AppointmentRepository) queries.BookedIntervalStore {
	return r
}
