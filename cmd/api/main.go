// Package main is the entry point for the Expense Tracker gateway.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-tracker/gateway/config"
	"github.com/expense-tracker/gateway/internal/infra/cache"
	"github.com/expense-tracker/gateway/internal/infra/db"
	"github.com/expense-tracker/gateway/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Expense Tracker gateway",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"data_source", cfg.DataSource.Mode,
		"remote_api", cfg.Remote.BaseURL,
	)

	// Initialize database connection
	var gormDB *gorm.DB
	if cfg.Database.URL != "" {
		database, err := db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			if cfg.DataSource.UsesDatabase() {
				slog.Error("Database connection failed", "error", err)
				os.Exit(1)
			}
			slog.Warn("Database connection failed, running without database", "error", err)
		} else {
			if err := database.MigrateGatewayTables(); err != nil {
				slog.Error("Failed to run database migrations", "error", err)
				os.Exit(1)
			}
			slog.Info("Database migrations completed successfully")

			gormDB = database.DB()
			defer func() {
				if err := database.Close(); err != nil {
					slog.Error("Failed to close database connection", "error", err)
				}
			}()
		}
	}

	// Initialize Redis connection
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisConnection(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis connection failed, running without cache", "error", err)
		} else {
			redisClient = client
			defer redisClient.Close()
		}
	}

	injector, err := dependency.NewInjector(cfg, dependency.Options{
		DB:    gormDB,
		Redis: redisClient,
	})
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Background jobs stop with this context
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	go injector.LoginRateLimiter.StartCleanup(bgCtx)

	if injector.EmailWorker != nil {
		go injector.EmailWorker.Start(bgCtx)
	} else {
		slog.Info("Budget alert emails disabled")
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
