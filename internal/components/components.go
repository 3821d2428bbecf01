package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"wasteCollect/internal/api"
	"wasteCollect/internal/api/handlers/http/system"
	"wasteCollect/internal/config"
	"wasteCollect/internal/redis"
	"wasteCollect/internal/service"
	"wasteCollect/internal/storage/postgres"
	"wasteCollect/internal/workers"
	"wasteCollect/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Refresher  *workers.CacheRefresher
	Webhooks   *service.WebhookSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	cache := redis.NewAvailableCache(redisClient)
	queue := redis.NewNotificationQueue(redisClient.Client, redis.NotificationsKey)

	limits := service.PageLimits{
		Default: cfg.Collection.DefaultPageLimit,
		Max:     cfg.Collection.MaxPageLimit,
	}

	proximity := service.NewProximityService(storage.Wastes(), cache, logger, cfg.Collection.DefaultRadiusKM, cfg.Collection.CacheTTL, limits)
	srv := service.NewService(
		service.NewCollectionWorkflow(storage.Wastes(), storage.Collections(), cache, queue, logger),
		service.NewCollectionQueryService(storage.Collections(), logger, limits),
		proximity,
		service.NewWasteService(storage.Wastes(), storage.Addresses(), cache, logger, limits),
		service.NewAddressService(storage.Addresses(), cache, logger),
	)

	checks := map[string]system.Pinger{
		"postgres": storage.Pool,
		"redis":    redisClient,
	}
	httpServer := api.NewServer(ctx, cfg, logger, srv, checks)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Refresher:  workers.NewCacheRefresher(proximity, cfg.Collection.CacheRefreshSpec, logger),
		Webhooks:   service.NewWebhookSender(logger, cfg.Webhook, queue),
	}, nil
}

// StartWorkers launches the cache refresher and the webhook sender. Both stop
// when ctx is cancelled; wg is released once they have returned.
func (c *Components) StartWorkers(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := c.Refresher.Run(ctx); err != nil {
			c.logger.Error("cache refresher failed", slog.Any("error", err))
		}
	}()
	go func() {
		defer wg.Done()
		c.Webhooks.Run(ctx)
	}()
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
