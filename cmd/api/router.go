package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"movie-catalog-backend/internal/shared/middleware"
	"movie-catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Forwarded headers are honored only from these proxies, nil trusts none
	if err := router.SetTrustedProxies(c.Config.Server.TrustedProxies); err != nil {
		log.Error().Err(err).Msg("Invalid trusted proxies, ignoring forwarded headers")
		_ = router.SetTrustedProxies(nil)
	}

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS),
	)

	router.GET("/health", healthCheckHandler(c))

	api := router.Group(c.Config.App.BasePath)
	if c.RateLimiter != nil {
		api.Use(middleware.RateLimit(c.RateLimiter, c.Config.RateLimit.Window))
	}

	c.MovieHandler.RegisterRoutes(api)
	c.ActorHandler.RegisterRoutes(api)
	c.ReviewHandler.RegisterRoutes(api)
	c.CastHandler.RegisterRoutes(api)

	return router
}

// ========================================
// HEALTH CHECK
// ========================================

// healthCheckHandler reports 503 only when PostgreSQL is down. Redis is
// optional.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		body := gin.H{
			"status":   "healthy",
			"database": "up",
			"redis":    "disabled",
		}

		if err := c.PingDatabase(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body["database"] = "down"
		}

		if c.Config.Redis.Enabled {
			body["redis"] = "up"
			if err := c.PingRedis(ctx.Request.Context()); err != nil {
				body["redis"] = "down"
			}
		}

		ctx.JSON(status, body)
	}
}
