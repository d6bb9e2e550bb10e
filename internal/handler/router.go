package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cast-booking/internal/domain/reservation"
	"cast-booking/internal/handler/api"
	"cast-booking/internal/handler/middleware"
	"cast-booking/internal/pkg/config"
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
	reservationHandler *api.ReservationHandler,
	scheduleHandler *api.ScheduleHandler,
	catalogHandler *api.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, scheduleHandler, catalogHandler, authMiddleware)
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
	reservationHandler *api.ReservationHandler,
	scheduleHandler *api.ScheduleHandler,
	catalogHandler *api.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		wizard := apiGroup.Group("/wizard")
		wizard.Use(authMiddleware.RequireViewer(reservation.ViewerGuest))
		{
			addRoutes(wizard, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.StartWizard},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetWizard},
				{Method: http.MethodPost, Path: "/:id/advance", Handler: reservationHandler.AdvanceWizard},
				{Method: http.MethodPost, Path: "/:id/back", Handler: reservationHandler.RetreatWizard},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: reservationHandler.SubmitWizard},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.ListReservations},
			{Method: http.MethodGet, Path: "/courses", Handler: catalogHandler.ListCourses},
			{Method: http.MethodGet, Path: "/casts/:cast_id/options", Handler: catalogHandler.ListCastOptions},
			{Method: http.MethodGet, Path: "/casts/:cast_id/availability", Handler: scheduleHandler.Availability},
		})

		shifts := apiGroup.Group("/shifts")
		shifts.Use(authMiddleware.RequireViewer(reservation.ViewerCast))
		{
			addRoutes(shifts, []route{
				{Method: http.MethodGet, Path: "", Handler: scheduleHandler.ListShifts},
				{Method: http.MethodPost, Path: "", Handler: scheduleHandler.SaveDay},
				{Method: http.MethodPost, Path: "/weekly", Handler: scheduleHandler.SaveWeekly},
				{Method: http.MethodGet, Path: "/:date", Handler: scheduleHandler.PrefillDay},
				{Method: http.MethodDelete, Path: "/:date", Handler: scheduleHandler.DeleteDay},
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
