package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	gqlapi "github.com/lojinha/commerce-system/internal/api/graphql"
	"github.com/lojinha/commerce-system/internal/api/handler"
	"github.com/lojinha/commerce-system/internal/api/middleware"
	"github.com/lojinha/commerce-system/internal/core/service"
	"github.com/lojinha/commerce-system/internal/infrastructure/memory"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// State lives in the in-memory repositories constructed here, so every
// transport (REST and GraphQL) operates over the same users and catalog.
func NewRouter(jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := memory.NewUserRepository()
	catalog := memory.NewProductCatalog()
	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL)
	checkoutService := service.NewCheckoutService(catalog, log)

	authHandler := handler.NewAuthHandler(authService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	productHandler := handler.NewProductHandler(catalog)

	// --- REST routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/users/register", authHandler.Register)
	apiGroup.POST("/users/login", authHandler.Login)
	apiGroup.POST("/checkout", checkoutHandler.Checkout, middleware.Auth(authService))
	apiGroup.GET("/products", productHandler.List)

	// --- GraphQL (identity is optional; the checkout resolver enforces it) ---
	schema, err := gqlapi.NewSchema(authService, checkoutService, catalog)
	if err != nil {
		return nil, err
	}
	gqlHandler := echo.WrapHandler(gqlapi.NewHTTPHandler(schema))
	e.GET("/graphql", gqlHandler, middleware.OptionalAuth(authService))
	e.POST("/graphql", gqlHandler, middleware.OptionalAuth(authService))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(catalog)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the catalog seeded?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
