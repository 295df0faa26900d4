package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"auth-graph/app/graphql"
	"auth-graph/app/port"
	"auth-graph/app/rest/handlers"
	custommw "auth-graph/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger     *slog.Logger
	Schema     *graphql.Handler
	TokenCodec port.TokenCodec
	DB         handlers.HealthChecker
}

// NewRouter creates and configures the Echo router. The GraphQL endpoint
// sits behind the identity middleware so every operation sees the resolved
// (possibly anonymous) identity context.
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	healthHandler := handlers.NewHealthHandler(config.DB, config.Logger)
	identityMiddleware := custommw.NewIdentityMiddleware(config.TokenCodec, config.Logger)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Health endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/ready", healthHandler.ReadinessCheck)

	// GraphQL endpoint
	e.POST("/graphql", config.Schema.Execute, identityMiddleware.Resolve())

	return e
}
