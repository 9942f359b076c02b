package streak

import (
	"time"

	"github.com/ascend-app/ascend/internal/clock"
	"github.com/ascend-app/ascend/internal/domain"
)

const (
	// BonusPerDay is the streak multiplier growth per consecutive day
	BonusPerDay = 0.10
	// BonusCap limits the streak bonus regardless of streak length
	BonusCap = 0.50
)

// Update advances a streak for activity at time now. Idempotent within a
// calendar day: a second call on the same day returns the streak unchanged.
// A one-day-old streak is extended; anything older resets to 1.
func Update(s domain.StreakData, now time.Time) domain.StreakData {
	today := clock.DateKey(now)
	if s.LastActiveDate == today {
		return s
	}

	if s.LastActiveDate == clock.YesterdayKey(now) {
		s.Current++
	} else {
		s.Current = 1
	}
	if s.Current > s.Best {
		s.Best = s.Current
	}
	s.LastActiveDate = today
	return s
}

// UpdateSet applies Update to the global streak and to the touched skill's
// streak. Other skills' streaks are untouched.
func UpdateSet(set domain.StreakSet, skillID domain.SkillID, now time.Time) domain.StreakSet {
	set.Global = Update(set.Global, now)
	if set.PerSkill == nil {
		set.PerSkill = make(map[domain.SkillID]domain.StreakData)
	}
	set.PerSkill[skillID] = Update(set.PerSkill[skillID], now)
	return set
}

// Multiplier returns the XP bonus multiplier for a streak length: +10% per
// day, capped at +50%. Derived from the global streak only.
func Multiplier(days int) float64 {
	bonus := float64(days) * BonusPerDay
	if bonus > BonusCap {
		bonus = BonusCap
	}
	return 1 + bonus
}

// IsActive reports whether the streak is still alive at time now, i.e. the
// last activity was today or yesterday.
func IsActive(s domain.StreakData, now time.Time) bool {
	return s.LastActiveDate == clock.DateKey(now) || s.LastActiveDate == clock.YesterdayKey(now)
}
