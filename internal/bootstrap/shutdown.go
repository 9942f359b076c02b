package bootstrap

import (
	"context"
	"log/slog"

	"github.com/ascend-app/ascend/internal/server"
	"github.com/ascend-app/ascend/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server      *server.Server
	DecayWorker *worker.DecayWorker
	WorkerPool  *worker.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down components in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Decay worker (cancel the pending sweep timer, wait for in-flight sweeps)
// 3. Worker pool (drain queued jobs)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Shutdown server first (stop accepting new requests)
	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	// Shutdown the decay worker to cancel pending timers
	if components.DecayWorker != nil {
		if err := components.DecayWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgDecayWorkerShutdownFailed, "error", err)
		}
	}

	// Stop the worker pool last so any sweep job enqueued before shutdown
	// still drains
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
