package bootstrap

import (
	"log/slog"
	"time"

	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

// NewLogger renders timestamps in the clinic's zone.
func NewLogger(cfg config.Config, clinicLoc *time.Location) *middleware.Logger {
	return middleware.NewLogger(cfg.Log, clinicLoc)
}
