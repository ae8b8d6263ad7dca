package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnera/internal/handler/api"
	"turnera/internal/handler/middleware"
	"turnera/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	tenantHandler *api.TenantHandler,
	scheduleHandler *api.ScheduleHandler,
	serviceHandler *api.ServiceHandler,
	slotHandler *api.SlotHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, tenantHandler, scheduleHandler, serviceHandler, slotHandler, reservationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	tenantHandler *api.TenantHandler,
	scheduleHandler *api.ScheduleHandler,
	serviceHandler *api.ServiceHandler,
	slotHandler *api.SlotHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		// Anonymous visitor surface, reached through a tenant's public code.
		public := apiGroup.Group("/public")
		{
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "/tenants/:code", Handler: tenantHandler.ByCode},
				{Method: http.MethodGet, Path: "/tenants/:code/services", Handler: tenantHandler.ServicesByCode},
				{Method: http.MethodGet, Path: "/services/:id/slots", Handler: slotHandler.VisitorSlots},
			})
		}

		tenants := apiGroup.Group("/tenants")
		tenants.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tenants, []route{
				{Method: http.MethodPost, Path: "/activate", Handler: tenantHandler.Activate},
			})
		}

		// Provider console; every route acts on the caller's own tenant.
		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireAuth(), authMiddleware.RequireOwner())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "", Handler: tenantHandler.Me},
				{Method: http.MethodPost, Path: "/code", Handler: tenantHandler.RegenerateCode},
				{Method: http.MethodGet, Path: "/hours", Handler: scheduleHandler.Week},
				{Method: http.MethodPut, Path: "/hours", Handler: scheduleHandler.ReplaceWeek},
				{Method: http.MethodGet, Path: "/services", Handler: serviceHandler.Mine},
				{Method: http.MethodPost, Path: "/services", Handler: serviceHandler.Create},
				{Method: http.MethodPut, Path: "/services/:id", Handler: serviceHandler.Update},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: serviceHandler.Delete},
				{Method: http.MethodGet, Path: "/agenda", Handler: slotHandler.Agenda},
				{Method: http.MethodPost, Path: "/slots", Handler: slotHandler.Create},
				{Method: http.MethodPatch, Path: "/slots/:id", Handler: slotHandler.Edit},
				{Method: http.MethodDelete, Path: "/slots/:id", Handler: slotHandler.Delete},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Reserve},
				{Method: http.MethodPost, Path: "/direct", Handler: reservationHandler.ReserveDirect},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.Mine},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel},
			})
		}
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
