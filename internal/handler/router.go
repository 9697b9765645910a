package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/api"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/middleware"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Barber       *api.BarberHandler
	Service      *api.ServiceHandler
	Client       *api.ClientHandler
	Schedule     *api.ScheduleHandler
	Appointment  *api.AppointmentHandler
	Availability *api.AvailabilityHandler
	Notification *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		barbers := apiGroup.Group("/barbers")
		{
			addRoutes(barbers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Barber.List},
				{Method: http.MethodPost, Path: "", Handler: h.Barber.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Barber.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Barber.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Barber.Delete},

				{Method: http.MethodGet, Path: "/:id/working-hours", Handler: h.Schedule.ListWorkingHours},
				{Method: http.MethodPost, Path: "/:id/working-hours", Handler: h.Schedule.AddWorkingHours},
				{Method: http.MethodDelete, Path: "/:id/working-hours/:windowId", Handler: h.Schedule.RemoveWorkingHours},

				{Method: http.MethodGet, Path: "/:id/time-off", Handler: h.Schedule.ListTimeOff},
				{Method: http.MethodPost, Path: "/:id/time-off", Handler: h.Schedule.AddTimeOff},
				{Method: http.MethodDelete, Path: "/:id/time-off/:timeOffId", Handler: h.Schedule.RemoveTimeOff},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Service.List},
				{Method: http.MethodPost, Path: "", Handler: h.Service.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Service.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Service.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Service.Delete},
			})
		}

		clients := apiGroup.Group("/clients")
		{
			addRoutes(clients, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Client.List},
				{Method: http.MethodPost, Path: "", Handler: h.Client.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Client.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Client.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Client.Delete},
			})
		}

		appointments := apiGroup.Group("/appointments")
		{
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Appointment.List},
				{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Appointment.Confirm},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Appointment.Cancel},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Appointment.Complete},
			})
		}

		apiGroup.GET("/availability", h.Availability.DaySlots)

		notifications := apiGroup.Group("/notifications")
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodGet, Path: "/unread-count", Handler: h.Notification.UnreadCount},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
				{Method: http.MethodPost, Path: "/read-all", Handler: h.Notification.MarkAllRead},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
