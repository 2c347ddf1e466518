package components

import (
	"clinic-booking/internal/infra/readstore"
	"clinic-booking/internal/infra/repository"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/infra/uow"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Availability
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OccupiedSlotQueries)),
		),
		fx.Annotate(
			readstore.NewOccupiedSlotReadStore,
			fx.As(new(queries.OccupiedSlotReadStore)),
		),
		// Appointment views
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentViewQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		// Plan views
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PlanViewQueries)),
		),
		fx.Annotate(
			readstore.NewPlanReadStore,
			fx.As(new(queries.PlanReadStore)),
		),
		// Reminder candidates
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReminderCandidateQueries)),
		),
		fx.Annotate(
			readstore.NewReminderReadStore,
			fx.As(new(commands.ReminderReadStore)),
		),
		// Contacts
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ContactQueries)),
		),
		fx.Annotate(
			readstore.NewContactReadStore,
			fx.As(new(commands.ContactReadStore)),
		),
		// Notification settings
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SettingsQueries)),
		),
		fx.Annotate(
			readstore.NewSettingsReader,
			fx.As(new(shared.SettingsReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		// Reaper
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ReaperQueries)),
		),
		fx.Annotate(
			repository.NewReaperRepository,
			fx.As(new(shared.Reaper)),
		),
	),
)

// Appointment and plan repositories are built per transaction by the unit of work.
func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, q, cfg.DB.Timeout)
}

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
