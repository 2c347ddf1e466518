package components

import (
	"context"
	"log/slog"

	"clinic-booking/internal/infra/notify"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		fx.Annotate(
			NewGateway,
			fx.As(new(shared.NotificationGateway)),
		),
		fx.Annotate(
			NewTaskRunner,
			fx.As(new(shared.TaskRunner)),
		),
	),
)

func NewGateway(cfg config.Config) *notify.WhatsAppGateway {
	return notify.NewWhatsAppGateway(cfg.Reminder.GatewayTimeout)
}

// NewTaskRunner drains in-flight staff alerts before the process exits.
func NewTaskRunner(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *shared.BackgroundRunner {
	runner := shared.NewBackgroundRunner(logger, cfg.Reminder.PostCommitTaskLimit)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return runner.Wait(ctx)
		},
	})
	return runner
}
