package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/auth-service/docs"
	"github.com/99minutos/auth-service/internal/api/handler"
	"github.com/99minutos/auth-service/internal/api/middleware"
	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
	"github.com/99minutos/auth-service/internal/core/service"
	"github.com/99minutos/auth-service/internal/pkg/token"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Users      ports.UserRepository
	Tokens     *token.Manager
	Revoker    service.TokenRevoker
	Health     *handler.HealthHandler // optional
	BcryptCost int
	Log        zerolog.Logger
	// Registry collects the HTTP metrics and backs /metrics. Defaults to the
	// global prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:                 "auth_http",
		Registerer:                registerer,
		DoNotUseRequestPathFor404: true,
	}))

	// --- Dependencies ---
	authService := service.NewAuthService(deps.Users, deps.Tokens, deps.Revoker, deps.BcryptCost, deps.Log)
	userService := service.NewUserService(deps.Users)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	restricted := middleware.Restricted(deps.Tokens)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register, middleware.ValidateRoleName)
	auth.POST("/login", authHandler.Login, middleware.CheckUsernameExists(deps.Users))
	auth.POST("/logout", authHandler.Logout, restricted)

	// --- User routes ---
	users := e.Group("/api/users", restricted)
	users.GET("", userHandler.List)
	users.GET("/:user_id", userHandler.Get, middleware.Only(domain.RoleAdmin))

	// --- Operational endpoints (no auth required) ---
	if deps.Health != nil {
		e.GET("/health", deps.Health.Liveness)        // liveness  – is the process alive?
		e.GET("/health/ready", deps.Health.Readiness) // readiness – are dependencies up?
	}
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
