package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"homeinsight-catalog/internal/handlers"
	"homeinsight-catalog/internal/middleware"
	"homeinsight-catalog/internal/repositories"
	"homeinsight-catalog/internal/services"
	"homeinsight-catalog/internal/transformers"
	"homeinsight-catalog/internal/validators"
	"homeinsight-catalog/pkg/cache"
	"homeinsight-catalog/pkg/config"
	"homeinsight-catalog/pkg/database"
	"homeinsight-catalog/pkg/logger"
	"homeinsight-catalog/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// App represents the application structure
type App struct {
	Config         *config.Config
	Router         *gin.Engine
	ListingHandler *handlers.ListingHandler
	UserHandler    *handlers.UserHandler
	RateLimiter    *middleware.RateLimiter
	Server         *http.Server

	stopBackground context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	if cfg.JWT.Secret == "" {
		logger.GlobalLogger.Error("JWT secret is not configured; set JWT_SECRET or jwt.secret")
		os.Exit(1)
	}

	// infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// business logic
	app.initializeDependencies()

	// web layer
	app.initializeRouter()

	return app
}

func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

func (a *App) initializeMetrics() {
	metrics.Init()
}

func (a *App) initializeRateLimiter() {
	ctx, cancel := context.WithCancel(context.Background())
	a.stopBackground = cancel
	a.RateLimiter = middleware.NewRateLimiter(a.Config.RateLimit.PerMinute, a.Config.RateLimit.Burst)
	go a.RateLimiter.Cleanup(ctx, time.Hour)
}

func (a *App) initializeDependencies() {
	// repositories
	listingRepo := repositories.NewListingRepository(database.DB)
	listingCache := repositories.NewListingCache(cache.RedisClient)
	userRepo := repositories.NewUserRepository(database.DB)

	// transformers and validators
	listingTrans := transformers.NewListingTransformer()
	listingValidator := validators.NewListingValidator()
	userValidator := validators.NewUserValidator()

	// services
	listingService := services.NewListingService(listingRepo, listingCache, listingValidator, a.Config.Cache.SearchTTL)
	importService := services.NewImportService(listingRepo, listingCache, listingTrans, listingValidator)
	userService := services.NewUserService(userRepo, userValidator, a.Config.JWT.Secret)

	// handlers
	a.ListingHandler = handlers.NewListingHandler(listingService, importService)
	a.UserHandler = handlers.NewUserHandler(userService)
}

func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

func (a *App) cleanup() {
	if a.stopBackground != nil {
		a.stopBackground()
	}
	database.CloseDB()
	cache.CloseRedis()
}
