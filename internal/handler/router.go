package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petsitter-booking/internal/handler/api"
	"petsitter-booking/internal/handler/middleware"
	"petsitter-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Pricing *api.PricingHandler
	Session *api.SessionHandler
	Admin   *api.AdminHandler
}

func NewHandlers(pricing *api.PricingHandler, session *api.SessionHandler, admin *api.AdminHandler) Handlers {
	return Handlers{Pricing: pricing, Session: session, Admin: admin}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, hs Handlers, limiter *middleware.SubmitLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, hs, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.WithSlogLogger(logger, cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, hs Handlers, limiter *middleware.SubmitLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/pricing"), []route{
			{Method: http.MethodGet, Path: "/services", Handler: hs.Pricing.Services},
			{Method: http.MethodGet, Path: "/quote", Handler: hs.Pricing.Quote},
		})

		addRoutes(apiGroup.Group("/sessions"), []route{
			{Method: http.MethodPost, Path: "", Handler: hs.Session.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: hs.Session.Get},
			{Method: http.MethodPut, Path: "/:id/selection", Handler: hs.Session.UpdateSelection},
			{Method: http.MethodPut, Path: "/:id/contact", Handler: hs.Session.UpdateContact},
			{Method: http.MethodPost, Path: "/:id/draft/time-slots", Handler: hs.Session.ToggleTimeSlot},
			{Method: http.MethodPost, Path: "/:id/draft/full-day", Handler: hs.Session.ToggleFullDay},
			{Method: http.MethodDelete, Path: "/:id/draft/slots/:slotId", Handler: hs.Session.RemoveSlot},
			{Method: http.MethodPost, Path: "/:id/submit", Handler: hs.Session.Submit, Mw: []gin.HandlerFunc{limiter.Middleware()}},
			{Method: http.MethodPost, Path: "/:id/acknowledge", Handler: hs.Session.Acknowledge},
			{Method: http.MethodPut, Path: "/:id/view", Handler: hs.Session.SelectTab},
		})

		addRoutes(apiGroup.Group("/admin"), []route{
			{Method: http.MethodGet, Path: "/requests", Handler: hs.Admin.List},
			{Method: http.MethodGet, Path: "/requests/:id", Handler: hs.Admin.Get},
			{Method: http.MethodPatch, Path: "/requests/:id/slots/:slotId", Handler: hs.Admin.UpdateSlotStatus},
			{Method: http.MethodPatch, Path: "/requests/:id/slots", Handler: hs.Admin.UpdateAllSlotStatuses},
			{Method: http.MethodGet, Path: "/badge", Handler: hs.Admin.Badge},
		})
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
