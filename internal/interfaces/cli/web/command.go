package web

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
	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/storage"
	webRouter "helpdesk/internal/interfaces/web"
	"helpdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Start the web frontend",
		Long:  `Start the browser-facing web server that proxies to the ticket API.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

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

	logger.Info("starting web frontend", "environment", env, "backend_url", cfg.Web.BackendURL)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	var objectStore storage.ObjectStore
	if cfg.Storage.Configured() {
		store, err := storage.NewObjectStorage(cfg.Storage, logger.NewLogger())
		if err != nil {
			logger.Fatal("failed to initialize object storage", "error", err)
		}
		objectStore = store
	} else {
		logger.Warn("object storage not configured, /media links will fail")
	}

	router, err := webRouter.NewRouter(cfg, objectStore)
	if err != nil {
		logger.Fatal("failed to build router", "error", err)
	}

	srv := &http.Server{
		Addr:         cfg.Web.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("web frontend listening", "address", cfg.Web.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down web frontend...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("web frontend exited gracefully")
	return nil
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
