package hardcore

import (
	"time"

	"github.com/ascend-app/ascend/internal/achievement"
	"github.com/ascend-app/ascend/internal/clock"
	"github.com/ascend-app/ascend/internal/domain"
)

const (
	// Escape thresholds, evaluated against today's live counts
	EscapeActionCount  = 5
	EscapeUniqueSkills = 4
)

// escapeRewards is the XP granted for clearing each tier
var escapeRewards = map[domain.PenaltyTier]int{
	domain.TierWarning:     250,
	domain.TierPenaltyZone: 250,
	domain.TierCritical:    300,
}

// CheckEscape clears the active penalty tier when today's activity meets the
// escape condition. The reward XP lands on the discipline skill. Escaping
// penaltyZone or critical also unlocks the matching achievement, the one
// unlock path the generic achievement scan never takes.
func CheckEscape(state *domain.GameState, now time.Time) domain.EscapeResult {
	if !state.HardcoreMode || state.Penalty.Tier == domain.TierNone {
		return domain.EscapeResult{}
	}

	today := clock.DateKey(now)
	perSkill, total := countActionsOn(state.Log, today, now.Location())
	if total < EscapeActionCount && len(perSkill) < EscapeUniqueSkills {
		return domain.EscapeResult{}
	}

	from := state.Penalty.Tier
	reward := escapeRewards[from]

	state.Penalty.Tier = domain.TierNone
	state.Penalty.ConsecutiveMisses = 0
	state.Penalty.PenaltyQuestActive = false
	if from == domain.TierPenaltyZone || from == domain.TierCritical {
		state.Penalty.PenaltyZoneSurvived++
	}

	if sk := state.FindSkill(domain.SkillDiscipline); sk != nil {
		sk.XP += reward
	}

	result := domain.EscapeResult{Escaped: true, FromTier: from, RewardXP: reward}
	switch from {
	case domain.TierPenaltyZone:
		result.Achievement = unlockEscape(state, achievement.IDEscapePenaltyZone)
	case domain.TierCritical:
		result.Achievement = unlockEscape(state, achievement.IDEscapeCritical)
	}
	return result
}

func unlockEscape(state *domain.GameState, id string) string {
	if state.HasAchievement(id) {
		return ""
	}
	state.UnlockedAchievements = append(state.UnlockedAchievements, id)
	return id
}
