package concurrency

import (
	"sync"
)

// LockManager hands out named locks. The game service takes one lock per
// user id so state mutations for a user are serialized while different
// users proceed in parallel. Locks are never evicted.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
