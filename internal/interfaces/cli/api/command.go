package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/storage"
	httpRouter "helpdesk/internal/interfaces/http"
	"helpdesk/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Start the ticket API server",
		Long:  `Start the backend HTTP API that owns tickets, reports and user accounts.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting api server", "environment", env)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment")
		}
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get()); err != nil {
			logger.Fatal("auto-migration failed", "error", err)
		}
		logger.Info("migrations applied", "strategy", manager.StrategyName())
	}

	rateLimiter := buildRateLimiter(cfg)
	objectStore := buildObjectStore(cfg)

	router, err := httpRouter.NewRouter(database.Get(), cfg, rateLimiter, objectStore)
	if err != nil {
		logger.Fatal("failed to build router", "error", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("api server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down api server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("api server exited gracefully")
	return nil
}

// buildRateLimiter connects to redis when configured and falls back to a
// no-op limiter otherwise, so a missing redis never blocks logins.
func buildRateLimiter(cfg *config.Config) ratelimit.RateLimiter {
	if cfg.Redis.Host == "" {
		logger.Warn("redis not configured, login rate limiting disabled")
		return ratelimit.NoopRateLimiter{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, login rate limiting disabled", "error", err)
		return ratelimit.NoopRateLimiter{}
	}

	return ratelimit.NewRedisRateLimiter(client)
}

func buildObjectStore(cfg *config.Config) storage.ObjectStore {
	if !cfg.Storage.Configured() {
		logger.Warn("object storage not configured, attachment uploads will fail")
		return storage.NewDisabled()
	}

	store, err := storage.NewObjectStorage(cfg.Storage, logger.NewLogger())
	if err != nil {
		logger.Fatal("failed to initialize object storage", "error", err)
	}
	return store
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
