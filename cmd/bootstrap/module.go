package bootstrap

import (
	"clinic-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClinicModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.NotificationModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
