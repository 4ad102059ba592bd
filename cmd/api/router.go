package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogsite-backend/internal/shared/middleware"
	"blogsite-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Metrics(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupSubscriberRoutes(api, c)
		setupPostRoutes(api, c)
		setupNotificationRoutes(api, c)
	}

	router.GET("/feed.xml", c.PostHandler.Feed)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func setupSubscriberRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/subscribe", c.SubscriberHandler.Subscribe)
	api.POST("/unsubscribe", c.SubscriberHandler.Unsubscribe)
}

func setupPostRoutes(api *gin.RouterGroup, c *container.Container) {
	posts := api.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/:slug", c.PostHandler.GetBySlug)
	}
}

func setupNotificationRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/notify-subscribers", c.NotificationHandler.NotifySubscribers)
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["database"] = err.Error()
		}
		if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["redis"] = err.Error()
		}

		ctx.JSON(status, gin.H{
			"status":  http.StatusText(status),
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
