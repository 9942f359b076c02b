package worker

import (
	"context"
	"sync"
	"time"

	"github.com/ascend-app/ascend/internal/logger"
)

// DecaySweeper is the slice of the game service the decay worker needs
type DecaySweeper interface {
	RunDecayForAll(ctx context.Context) (int, error)
}

// DecayWorker runs the nightly XP decay sweep shortly after midnight UTC.
// The sweep itself executes on the shared worker pool so a slow run never
// blocks the scheduler.
type DecayWorker struct {
	gameService DecaySweeper
	pool        *Pool
	timer       *time.Timer
	shutdown    chan struct{}
	wg          sync.WaitGroup
	mu          sync.Mutex
}

// NewDecayWorker creates a new DecayWorker
func NewDecayWorker(gameService DecaySweeper, pool *Pool) *DecayWorker {
	return &DecayWorker{
		gameService: gameService,
		pool:        pool,
		shutdown:    make(chan struct{}),
	}
}

// Start initializes the worker and schedules the first sweep
func (w *DecayWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until the next sweep and arms the timer
func (w *DecayWorker) scheduleNext() {
	duration := timeUntilNextSweep()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling to prevent tight-loop rescheduling caused by
	// early timer triggers
	if duration > 1*time.Hour {
		// Stage 1: long-range standby. Wake up 45 minutes before the sweep.
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		nextCheck := time.Now().UTC().Add(waitDuration)
		log.Info(LogMsgDecaySweepStandby, "next_check_at", nextCheck)
		return
	}

	// Stage 2: final approach. Schedule the actual sweep.
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Jitter protection: if the timer triggered early (> 10s remaining),
		// reschedule for the remaining time. A remainder above 23h means we
		// are on time or slightly late.
		rem := timeUntilNextSweep()
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeSweep()
		w.scheduleNext() // back to stage 1 with ~24h remaining
	})
	w.mu.Unlock()

	nextSweep := time.Now().UTC().Add(duration)
	log.Info(LogMsgDecaySweepApproach, "next_sweep_at", nextSweep)
}

// executeSweep hands the sweep to the worker pool, falling back to a tracked
// goroutine when no pool is configured
func (w *DecayWorker) executeSweep() {
	job := &decaySweepJob{gameService: w.gameService}

	if w.pool != nil {
		w.pool.Enqueue(job)
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if err := job.Process(context.Background()); err != nil {
			logger.FromContext(context.Background()).Error(LogMsgDecaySweepFailed, "error", err)
		}
	}()
}

// Shutdown gracefully shuts down the decay worker.
// Cancels the pending timer and waits for any in-flight sweep to complete.
func (w *DecayWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down decay worker")

	select {
	case <-w.shutdown:
		// already closed
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending decay sweep")
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Decay worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Decay worker shutdown timeout, a sweep may still be running")
		return ctx.Err()
	}
}

// decaySweepJob runs the decay check for every user
type decaySweepJob struct {
	gameService DecaySweeper
}

func (j *decaySweepJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDecaySweepStarting)

	processed, err := j.gameService.RunDecayForAll(ctx)
	if err != nil {
		log.Error(LogMsgDecaySweepFailed, "error", err)
		return err
	}

	log.Info(LogMsgDecaySweepCompleted, "users_processed", processed)
	return nil
}

// timeUntilNextSweep calculates the duration until the next 00:05 UTC.
// The five-minute offset keeps the sweep clear of other midnight cron jobs.
func timeUntilNextSweep() time.Duration {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 5, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
