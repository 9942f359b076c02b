package achievement

import (
	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/level"
)

// Check evaluates the full pool against the context and returns the ids of
// newly met achievements in pool order. Already-unlocked ids are skipped and
// never re-reported; an evaluation that panics counts as unmet.
func Check(ctx domain.AchievementContext) []string {
	unlocked := make(map[string]bool, len(ctx.UnlockedAchievements))
	for _, id := range ctx.UnlockedAchievements {
		unlocked[id] = true
	}

	var newlyUnlocked []string
	for i := range Pool {
		a := &Pool[i]
		if unlocked[a.ID] {
			continue
		}
		if met(a, ctx) {
			newlyUnlocked = append(newlyUnlocked, a.ID)
		}
	}
	return newlyUnlocked
}

func met(a *domain.Achievement, ctx domain.AchievementContext) (ok bool) {
	// A single bad rule must never abort the logging transaction
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	switch a.Kind {
	case domain.KindTotalLevel:
		return ctx.TotalLevel >= a.Threshold

	case domain.KindSkillLevel:
		for _, s := range ctx.Skills {
			if s.ID == a.Skill {
				return level.Level(s.XP) >= a.Threshold
			}
		}
		return false

	case domain.KindActionCount:
		return ctx.TotalActions >= a.Threshold

	case domain.KindStreak:
		return ctx.GlobalStreak >= a.Threshold

	case domain.KindBalance:
		if len(ctx.Skills) == 0 {
			return false
		}
		for _, s := range ctx.Skills {
			if level.Level(s.XP) < a.Threshold {
				return false
			}
		}
		return true

	case domain.KindCollection:
		return len(ctx.UnlockedAchievements) >= a.Threshold

	case domain.KindPenaltyEscape:
		// Unlocked only through the hardcore engine's escape transition
		return false
	}
	return false
}
