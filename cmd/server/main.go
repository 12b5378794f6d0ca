package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/dev-modakk/modakk-backend/internal/cache"
	"github.com/dev-modakk/modakk-backend/internal/config"
	"github.com/dev-modakk/modakk-backend/internal/handler"
	"github.com/dev-modakk/modakk-backend/internal/identifier"
	"github.com/dev-modakk/modakk-backend/internal/infrastructure/database"
	"github.com/dev-modakk/modakk-backend/internal/logger"
	"github.com/dev-modakk/modakk-backend/internal/metrics"
	"github.com/dev-modakk/modakk-backend/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logger.Init(cfg.LogLevel, cfg.IsDevelopment())

	stores, checks, closeStores, err := openStores(cfg)
	if err != nil {
		logger.Fatal("Failed to open storage",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", err.Error()))
	}
	defer closeStores()

	browseCache, closeCache := openCache(cfg, checks)
	defer closeCache()

	ids := identifier.New(cfg.IDPrefix, stores.giftBoxes,
		identifier.WithCollisionHook(func(s identifier.Scheme) {
			metrics.IDCollisions.WithLabelValues(string(s)).Inc()
		}))

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := newRouter(cfg, stores, ids, browseCache, handler.NewHealthHandler(checks))

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store", cfg.StoreDriver),
			slog.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// In-flight imports run on a detached context; give them time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

// openStores builds the repositories for the configured driver and registers
// their readiness checks.
func openStores(cfg *config.Config) (stores, map[string]handler.Pinger, func(), error) {
	checks := map[string]handler.Pinger{}

	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory storage; data is lost on restart")
		return stores{
			giftBoxes:  repository.NewMemoryGiftBoxRepository(),
			carousels:  repository.NewMemoryCarouselRepository(),
			importRuns: repository.NewMemoryImportRunRepository(),
		}, checks, func() {}, nil
	}

	poolCfg := cfg.PoolConfig()
	if cfg.AutoMigrate {
		if err := database.Migrate(poolCfg.ConnString()); err != nil {
			return stores{}, nil, nil, err
		}
		logger.Info("Database migrations applied")
	}

	pool, err := database.NewPostgres(context.Background(), poolCfg)
	if err != nil {
		return stores{}, nil, nil, err
	}

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)

	checks["database"] = handler.PingFunc(func(ctx context.Context) error {
		return database.HealthCheck(ctx, pool)
	})

	return postgresStores(pool), checks, func() {
		poolStatsCollector.Stop()
		pool.Close()
	}, nil
}

func postgresStores(pool *pgxpool.Pool) stores {
	return stores{
		giftBoxes:  repository.NewPostgresGiftBoxRepository(pool),
		carousels:  repository.NewPostgresCarouselRepository(pool),
		importRuns: repository.NewPostgresImportRunRepository(pool),
	}
}

// openCache connects the browse cache. Without REDIS_ADDR browsing is uncached.
func openCache(cfg *config.Config, checks map[string]handler.Pinger) (cache.BrowseCache, func()) {
	if cfg.RedisAddr == "" {
		return cache.Nop{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	checks["cache"] = handler.PingFunc(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	logger.Info("Browse cache enabled", slog.String("addr", cfg.RedisAddr))

	return cache.NewRedisBrowseCache(client, cfg.CacheTTL), func() {
		if err := client.Close(); err != nil {
			logger.Warn("Failed to close redis client", slog.String("error", err.Error()))
		}
	}
}
