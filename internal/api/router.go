package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/salesdesk/leads-service/docs"
	"github.com/salesdesk/leads-service/internal/api/handler"
	"github.com/salesdesk/leads-service/internal/api/middleware"
	"github.com/salesdesk/leads-service/internal/core/service"
	"github.com/salesdesk/leads-service/internal/infrastructure/db/postgres"
	redisstore "github.com/salesdesk/leads-service/internal/infrastructure/db/redis"
)

// Deps are the process-wide resources the router wires into handlers.
type Deps struct {
	DB *gorm.DB
	// Redis is nil when idempotency is disabled.
	Redis          *redis.Client
	IdempotencyTTL time.Duration
	Logger         zerolog.Logger

	// Registry receives the HTTP metrics. Defaults to the global Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "leads",
		Registerer: registerer,
	}))
	e.Use(middleware.Recover(deps.Logger))

	// --- Dependencies ---
	leadRepo := postgres.NewLeadRepository(deps.DB)
	leadService := service.NewLeadService(leadRepo, deps.Logger.With().Str("component", "lead_service").Logger())
	if deps.Redis != nil {
		leadService.WithIdempotency(redisstore.NewIdempotencyStore(deps.Redis), deps.IdempotencyTTL)
	}
	leadHandler := handler.NewLeadHandler(leadService, deps.Logger.With().Str("component", "lead_handler").Logger())

	// --- Lead routes ---
	e.GET("/leads", leadHandler.List)
	e.POST("/leads", leadHandler.Create)
	e.PATCH("/leads/:leadId/stage", leadHandler.UpdateStage)
	e.PATCH("/leads/:leadId/owner", leadHandler.UpdateOwner)

	// --- Health probes ---
	checks := map[string]handler.Check{
		"postgres": func(ctx context.Context) error { return postgres.Ping(ctx, deps.DB) },
	}
	if deps.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return deps.Redis.Ping(ctx).Err() }
	}
	e.GET("/health", handler.NewHealthHandler().Liveness)                // liveness: is the process alive?
	e.GET("/health/ready", handler.NewReadinessHandler(checks).Readiness) // readiness: are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
