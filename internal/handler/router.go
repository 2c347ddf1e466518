package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-booking/internal/domain/user"
	"clinic-booking/internal/handler/api"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Appointments *api.AppointmentHandler
	Plans        *api.PlanHandler
	Admin        *api.AdminHandler
	Internal     *api.InternalHandler
}

type Middlewares struct {
	Logger      *middleware.Logger
	Auth        *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, cfg, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		availability := apiGroup.Group("/availability")
		availability.Use(mw.Auth.RequireAuth())
		addRoutes(availability, []route{
			{Method: http.MethodGet, Path: "/dates", Handler: h.Availability.Dates},
			{Method: http.MethodGet, Path: "", Handler: h.Availability.ForDate},
		})

		appointments := apiGroup.Group("/appointments")
		appointments.Use(mw.Auth.RequireAuth())
		addRoutes(appointments, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Appointments.Book, Mw: []gin.HandlerFunc{mw.RateLimiter.Middleware()}},
			{Method: http.MethodGet, Path: "", Handler: h.Appointments.ListMine},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Appointments.Cancel},
		})

		plans := apiGroup.Group("/plans")
		plans.Use(mw.Auth.RequireAuth())
		addRoutes(plans, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Plans.ListMine},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(mw.Auth.RequireAuth(), mw.Auth.RequireRoleAtLeast(user.RolePartner))
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/appointments", Handler: h.Admin.DayView},
			{Method: http.MethodPost, Path: "/appointments/:id/confirm", Handler: h.Admin.Confirm},
			{Method: http.MethodPost, Path: "/appointments/:id/cancel", Handler: h.Admin.Cancel},
			{Method: http.MethodPost, Path: "/plans/:id/sessions/complete", Handler: h.Admin.CompletePlanSession},
		})

		internal := apiGroup.Group("/internal")
		internal.Use(middleware.RequireTriggerToken(cfg.Server.TriggerToken))
		addRoutes(internal, []route{
			{Method: http.MethodPost, Path: "/reminders/dispatch", Handler: h.Internal.DispatchReminders},
			{Method: http.MethodPost, Path: "/reservations/reap", Handler: h.Internal.ReapReservations},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
