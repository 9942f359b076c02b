package quest

import "github.com/ascend-app/ascend/internal/domain"

// The LCG constants and the string hash are load-bearing: completion state
// stores quest ids per date, so the same date key must select the same quest
// set across versions. Do not change them.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// seedFor hashes a window key ("daily_2024-02-07") to a shuffle seed using a
// 32-bit string hash with wraparound, then takes the absolute value.
func seedFor(key string) int64 {
	var hash int32
	for _, c := range key {
		hash = (hash << 5) - hash + int32(c)
	}
	if hash < 0 {
		hash = -hash
	}
	return int64(hash)
}

// shuffled returns a seeded Fisher-Yates permutation of the pool
func shuffled(pool []domain.Quest, seed int64) []domain.Quest {
	out := make([]domain.Quest, len(pool))
	copy(out, pool)

	s := seed
	for i := len(out) - 1; i > 0; i-- {
		s = (s*lcgMultiplier + lcgIncrement) % lcgModulus
		j := int(s * int64(i+1) / lcgModulus)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// DailyQuests returns the 5 active daily quests for a calendar-day key.
// Deterministic: the same date always yields the same quests in the same
// order.
func DailyQuests(date string) []domain.Quest {
	return shuffled(DailyPool, seedFor("daily_"+date))[:DailyCount]
}

// WeeklyQuests returns the 3 active weekly quests for a week key (the date
// of the week's Sunday).
func WeeklyQuests(weekKey string) []domain.Quest {
	return shuffled(WeeklyPool, seedFor("weekly_"+weekKey))[:WeeklyCount]
}
