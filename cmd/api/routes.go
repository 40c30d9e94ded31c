package main

import (
	"context"
	"net/http"
	"time"

	"homeinsight-catalog/internal/middleware"
	"homeinsight-catalog/pkg/cache"
	"homeinsight-catalog/pkg/database"
	"homeinsight-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// photos referenced by listings and the metrics endpoint
func (a *App) setupStaticRoutes() {
	a.Router.Static("/media", a.Config.Media.Dir)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := database.Ping(ctx); err != nil {
			logger.GlobalLogger.Errorf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	{
		api.POST("/register", a.UserHandler.Register)
		api.POST("/login", a.UserHandler.Login)

		api.GET("/listings/public", a.ListingHandler.GetPublicListings)

		protected := api.Group("/listings")
		protected.Use(middleware.RequireAuth(a.Config.JWT.Secret))
		{
			protected.GET("", a.ListingHandler.GetListings)
			protected.POST("", a.ListingHandler.ImportListings)
			protected.DELETE("/:id", a.ListingHandler.DeleteListing)
		}
	}
}
