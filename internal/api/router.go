package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/prestige-worldwide/claims-intake/internal/api/handler"
	"github.com/prestige-worldwide/claims-intake/internal/api/middleware"
	"github.com/prestige-worldwide/claims-intake/internal/core/ports"
	"github.com/prestige-worldwide/claims-intake/internal/core/service"
	mongodb "github.com/prestige-worldwide/claims-intake/internal/infrastructure/db/mongo"
	redisdb "github.com/prestige-worldwide/claims-intake/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, maps ports.MapClient, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("claims"))

	// --- Dependencies ---
	claimRepo := mongodb.NewClaimRepository(db)
	credRepo := mongodb.NewCredentialRepository(db)

	claimService := service.NewClaimService(claimRepo, log)
	authService := service.NewAuthService(credRepo, jwtSecret, 0)
	geoService := service.NewGeoService(claimRepo, maps, log)

	claimHandler := handler.NewClaimHandler(claimService)
	authHandler := handler.NewAuthHandler(authService)
	geoHandler := handler.NewGeoHandler(geoService)

	cookieAuth := middleware.CookieAuth(authService)
	loginLimit := middleware.LoginRateLimit(redisdb.NewLoginLimiter(rdb, 0), log)

	// --- Claim routes ---
	e.POST("/claims", claimHandler.Create)
	e.GET("/claims", claimHandler.Search)
	e.GET("/claims/search/:policyNumber", claimHandler.ListByPolicy)
	e.GET("/claims/map/:id", geoHandler.MapImage)
	e.GET("/claims/:id", claimHandler.Get)
	e.GET("/insurer/claims", claimHandler.InsurerSearch, cookieAuth)

	// --- Geo routes ---
	e.GET("/address/:input", geoHandler.Autocomplete)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login, loginLimit)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
