package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Decay Worker
// ============================================================================

// Log messages for decay worker operations
const (
	LogMsgDecaySweepStandby   = "Decay sweep in standby"
	LogMsgDecaySweepApproach  = "Decay sweep scheduled"
	LogMsgDecaySweepStarting  = "Decay sweep starting"
	LogMsgDecaySweepCompleted = "Decay sweep completed"
	LogMsgDecaySweepFailed    = "Decay sweep failed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
