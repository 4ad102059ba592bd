package container

import (
	"context"
	"fmt"
	"time"

	"blogsite-backend/internal/config"
	infraCache "blogsite-backend/internal/infrastructure/cache"
	"blogsite-backend/internal/infrastructure/database"
	"blogsite-backend/internal/infrastructure/email"
	"blogsite-backend/pkg/cache"
	"blogsite-backend/pkg/logger"

	"blogsite-backend/internal/domains/notification"
	notificationHandler "blogsite-backend/internal/domains/notification/handler"
	notificationService "blogsite-backend/internal/domains/notification/service"
	"blogsite-backend/internal/domains/post"
	postHandler "blogsite-backend/internal/domains/post/handler"
	postRepo "blogsite-backend/internal/domains/post/repository"
	postService "blogsite-backend/internal/domains/post/service"
	"blogsite-backend/internal/domains/subscriber"
	subscriberHandler "blogsite-backend/internal/domains/subscriber/handler"
	subscriberRepo "blogsite-backend/internal/domains/subscriber/repository"
	subscriberService "blogsite-backend/internal/domains/subscriber/service"
)

// Container is the root of the dependency graph. Initialization order
// matters: config, then infrastructure, then repositories, services and
// handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *infraCache.RedisClient
	Cache  cache.Cache
	Email  email.EmailService

	SubscriberRepo subscriber.Repository
	PostRepo       post.Repository

	SubscriberService   subscriber.Service
	PostService         post.Service
	NotificationService notification.Service

	SubscriberHandler   *subscriberHandler.SubscriberHandler
	PostHandler         *postHandler.PostHandler
	NotificationHandler *notificationHandler.NotificationHandler
}

// NewContainer builds and wires the whole application.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// Infrastructure
	c.DB = database.NewPostgresDB(&database.DBConfig{
		Host:              cfg.Database.Host,
		Port:              cfg.Database.Port,
		Username:          cfg.Database.User,
		Password:          cfg.Database.Password,
		DBName:            cfg.Database.Database,
		SSLMode:           cfg.Database.SSLMode,
		MaxConns:          int32(cfg.Database.MaxConns),
		MinConns:          int32(cfg.Database.MinConns),
		MaxConnLifetime:   30 * time.Minute,
		MaxConnIdleTime:   5 * time.Minute,
		HealthCheckPeriod: time.Minute,
		MaxRetries:        4,
		RetryDelay:        time.Second,
		ConnectTimeout:    5 * time.Second,
	})
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := c.DB.ApplySchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	c.Redis = infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = infraCache.NewRedisCache(c.Redis)

	c.Email = email.NewSMTPEmailService(cfg.Email)

	// Repositories
	c.SubscriberRepo = subscriberRepo.NewPostgresRepository(c.DB.Pool)
	c.PostRepo = postRepo.NewPostgresRepository(c.DB.Pool)

	// Services
	c.SubscriberService = subscriberService.NewSubscriberService(c.SubscriberRepo)
	c.PostService = postService.NewPostService(c.PostRepo, c.Cache, cfg.Notify.FeedCacheTTL)
	c.NotificationService = notificationService.NewNotifierService(
		c.SubscriberService,
		c.Email,
		cfg.Site.BaseURL,
		cfg.Notify.MaxConcurrentSends,
	)

	// Handlers
	c.SubscriberHandler = subscriberHandler.NewSubscriberHandler(c.SubscriberService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService, cfg.Site.BaseURL)
	c.NotificationHandler = notificationHandler.NewNotificationHandler(c.NotificationService)

	logger.Info("Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure resources; called on shutdown.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
