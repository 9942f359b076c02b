package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_JobErrorDoesNotKillWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()

	pool.Enqueue(&testJob{executed: &executed, err: errors.New("job failed")})
	pool.Enqueue(&testJob{executed: &executed})

	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if got := atomic.LoadInt32(&executed); got != 2 {
		t.Errorf("Expected both jobs executed despite the first erroring, got %d", got)
	}
}
