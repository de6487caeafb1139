package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/cristianomarianoufsc-ops/vexel.2/docs"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/handler"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/middleware"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/infrastructure/http/handlers"
)

// Dependencies are the services the router wires into handlers.
type Dependencies struct {
	Log           zerolog.Logger
	Auth          ports.AuthService
	Store         ports.ContentStore
	Dashboard     ports.DashboardService
	APIKeys       ports.APIKeyService
	Notifications ports.NotificationService
	Migrations    ports.MigrationService
	// Storage may be nil; uploads then answer 503.
	Storage ports.ObjectStorage
	Cookie  handler.CookieConfig
	// Health backs /health/ready.
	Health []handlers.Dependency
	// Registerer enables HTTP metrics and /metrics when non-nil.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	if d.Registerer != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "vexel",
			Registerer: d.Registerer,
		}))
	}
	e.Use(middleware.Session(d.Auth, d.Cookie.Name, d.Log))

	// --- RPC procedures ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Cookie)
	mount(e.Group("/api/rpc"), registry(procedureHandlers{
		auth:      authHandler,
		system:    handler.NewSystemHandler(d.Notifications, d.Migrations),
		social:    handler.NewSocialMediaHandler(d.Store),
		calendar:  handler.NewCalendarHandler(d.Store),
		ideas:     handler.NewIdeaHandler(d.Store),
		assets:    handler.NewAssetHandler(d.Store),
		tasks:     handler.NewTaskHandler(d.Store),
		apiKeys:   handler.NewAPIKeyHandler(d.APIKeys),
		templates: handler.NewTemplateHandler(d.Store),
		lore:      handler.NewLoreHandler(d.Store),
		dashboard: handler.NewDashboardHandler(d.Dashboard),
	}))

	// --- OAuth ---
	e.GET("/api/oauth/login", authHandler.Login)
	e.GET("/api/oauth/callback", authHandler.Callback)

	// --- Uploads ---
	uploadHandler := handler.NewUploadHandler(d.Storage)
	e.POST("/api/assets/upload", uploadHandler.Upload, middleware.RequireUser())

	// --- Health probes (no auth required) ---
	probes := handlers.NewProbes(d.Health...)
	e.GET("/health", probes.Live)
	e.GET("/health/ready", probes.Ready)

	// --- Docs and metrics ---
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if d.Registerer != nil {
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	return e
}
