package components

import (
	"clinic-booking/internal/handler"
	"clinic-booking/internal/handler/api"
	reqdto "clinic-booking/internal/handler/dto/request"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewAppointmentHandler,
		api.NewPlanHandler,
		api.NewAdminHandler,
		api.NewInternalHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		newHandlers,
		newMiddlewares,
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)

func newHandlers(
	availability *api.AvailabilityHandler,
	appointments *api.AppointmentHandler,
	plans *api.PlanHandler,
	admin *api.AdminHandler,
	internal *api.InternalHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Appointments: appointments,
		Plans:        plans,
		Admin:        admin,
		Internal:     internal,
	}
}

func newMiddlewares(
	logger *middleware.Logger,
	auth *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) handler.Middlewares {
	return handler.Middlewares{
		Logger:      logger,
		Auth:        auth,
		RateLimiter: limiter,
	}
}
