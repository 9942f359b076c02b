package clock

import (
	"sync"
	"time"
)

// DateLayout is the calendar-day key format used by streaks, quests and decay
const DateLayout = "2006-01-02"

// Clock provides an abstraction for time operations so date-keyed logic is
// testable without touching the system clock.
type Clock interface {
	// Now returns the current time
	Now() time.Time
}

// RealClock uses the actual system time
type RealClock struct{}

// NewRealClock creates a new RealClock instance
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// SimulatedClock allows time manipulation for testing
type SimulatedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewSimulatedClock creates a clock frozen at the given time
func NewSimulatedClock(now time.Time) *SimulatedClock {
	return &SimulatedClock{now: now}
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the simulated time forward
func (c *SimulatedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the simulated time to an absolute instant
func (c *SimulatedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// DateKey formats a time as its calendar-day key
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// YesterdayKey returns the calendar-day key of the day before t
func YesterdayKey(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(DateLayout)
}

// WeekKey returns the calendar-day key of the most recent Sunday, the
// boundary used for weekly quests. A Sunday is its own week key.
func WeekKey(t time.Time) string {
	return t.AddDate(0, 0, -int(t.Weekday())).Format(DateLayout)
}
