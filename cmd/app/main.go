package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ascend-app/ascend/internal/bootstrap"
	"github.com/ascend-app/ascend/internal/clock"
	"github.com/ascend-app/ascend/internal/config"
	"github.com/ascend-app/ascend/internal/database"
	"github.com/ascend-app/ascend/internal/game"
	"github.com/ascend-app/ascend/internal/server"
	"github.com/ascend-app/ascend/internal/worker"
)

const (
	// ShutdownTimeout is the maximum time allowed for graceful shutdown
	ShutdownTimeout = 10 * time.Second

	// WorkerPoolSize is the number of background job workers
	WorkerPoolSize = 4

	// WorkerQueueSize is the capacity of the background job queue
	WorkerQueueSize = 64
)

// @title Ascend API
// @version 1.0
// @description Gamified personal progression API: skills, streaks, quests, achievements and hardcore mode.
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Setup logging (stdout + rotating session file)
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// Validate environment schema; insecure example values only warn
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	// Connect to database
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Initialize repositories
	repos := bootstrap.InitializeRepositories(dbPool)

	// Initialize game service
	gameService := game.NewService(repos.GameState, clock.NewRealClock())

	// Start background workers: shared pool plus the nightly decay sweep
	pool := worker.NewPool(WorkerPoolSize, WorkerQueueSize)
	pool.Start()

	decayWorker := worker.NewDecayWorker(gameService, pool)
	decayWorker.Start()

	// Create and start the HTTP server
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, gameService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	// Wait for shutdown signal or server failure
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:      srv,
		DecayWorker: decayWorker,
		WorkerPool:  pool,
	})
}
