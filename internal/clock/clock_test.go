package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2024, 2, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-07", DateKey(ts))
	assert.Equal(t, "2024-02-06", YesterdayKey(ts))
}

func TestWeekKey(t *testing.T) {
	// 2024-02-07 is a Wednesday; the week began Sunday 2024-02-04
	wed := time.Date(2024, 2, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-04", WeekKey(wed))

	// A Sunday is its own week key
	sun := time.Date(2024, 2, 4, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-04", WeekKey(sun))

	// Saturday still belongs to the week opened the prior Sunday
	sat := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-04", WeekKey(sat))
}

func TestSimulatedClock(t *testing.T) {
	start := time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC)
	c := NewSimulatedClock(start)
	assert.Equal(t, start, c.Now())

	c.Advance(26 * time.Hour)
	assert.Equal(t, "2024-02-08", DateKey(c.Now()))

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
