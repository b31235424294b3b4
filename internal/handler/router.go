package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kayak-console/internal/handler/api"
	"kayak-console/internal/handler/middleware"
	"kayak-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Booking   *api.BookingHandler
	Dashboard *api.DashboardHandler
	Slot      *api.SlotHandler
	Invoice   *api.InvoiceHandler
	Refund    *api.RefundHandler
	Broadcast *api.BroadcastHandler
	Voucher   *api.VoucherHandler
	Pricing   *api.PricingHandler
	Photo     *api.PhotoHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, metrics *middleware.Metrics) {
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, cfg, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *middleware.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	if cfg.Metrics.Enabled && metrics != nil {
		engine.Use(metrics.Middleware())
	}
}

func setupRoutes(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
			})
		}

		console := apiGroup.Group("")
		console.Use(authMiddleware.RequireAuth())
		{
			addRoutes(console, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: handlers.Dashboard.Today},

				{Method: http.MethodGet, Path: "/bookings", Handler: handlers.Booking.List},
				{Method: http.MethodPost, Path: "/bookings", Handler: handlers.Booking.Create},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: handlers.Booking.Get},
				{Method: http.MethodPatch, Path: "/bookings/:id", Handler: handlers.Booking.Edit},
				{Method: http.MethodPost, Path: "/bookings/:id/mark-paid", Handler: handlers.Booking.MarkPaid},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: handlers.Booking.Cancel},
				{Method: http.MethodPost, Path: "/bookings/:id/refund", Handler: handlers.Booking.RequestRefund},
				{Method: http.MethodPost, Path: "/bookings/:id/rebook", Handler: handlers.Booking.Rebook},

				{Method: http.MethodGet, Path: "/slots/week", Handler: handlers.Slot.Week},
				{Method: http.MethodGet, Path: "/slots/day", Handler: handlers.Slot.Day},
				{Method: http.MethodPost, Path: "/slots/:id/toggle", Handler: handlers.Slot.Toggle},

				{Method: http.MethodGet, Path: "/invoices", Handler: handlers.Invoice.List},
				{Method: http.MethodGet, Path: "/invoices/:id/render", Handler: handlers.Invoice.Render},
				{Method: http.MethodPost, Path: "/invoices/:id/resend", Handler: handlers.Invoice.Resend},

				{Method: http.MethodGet, Path: "/refunds", Handler: handlers.Refund.Queue},
				{Method: http.MethodPost, Path: "/refunds/process-all", Handler: handlers.Refund.ProcessAll},
				{Method: http.MethodPost, Path: "/refunds/:id/process", Handler: handlers.Refund.Process},
				{Method: http.MethodPost, Path: "/refunds/:id/mark-processed", Handler: handlers.Refund.MarkProcessed},

				{Method: http.MethodGet, Path: "/broadcasts/calendar", Handler: handlers.Broadcast.Calendar},
				{Method: http.MethodGet, Path: "/broadcasts/targets", Handler: handlers.Broadcast.Targets},
				{Method: http.MethodGet, Path: "/broadcasts/history", Handler: handlers.Broadcast.History},
				{Method: http.MethodPost, Path: "/broadcasts/send", Handler: handlers.Broadcast.Send},
				{Method: http.MethodPost, Path: "/broadcasts/weather-cancel", Handler: handlers.Broadcast.WeatherCancel},

				{Method: http.MethodGet, Path: "/vouchers", Handler: handlers.Voucher.List},

				{Method: http.MethodGet, Path: "/photos/trips", Handler: handlers.Photo.RecentTrips},
				{Method: http.MethodGet, Path: "/photos/history", Handler: handlers.Photo.History},
				{Method: http.MethodPost, Path: "/photos/send", Handler: handlers.Photo.Send},

				{Method: http.MethodGet, Path: "/pricing", Handler: handlers.Pricing.Overview},
				{Method: http.MethodPost, Path: "/pricing/peak", Handler: handlers.Pricing.ApplyPeak},
				{Method: http.MethodDelete, Path: "/pricing/peak", Handler: handlers.Pricing.RemovePeak},
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
