package game

import (
	"github.com/ascend-app/ascend/internal/achievement"
	"github.com/ascend-app/ascend/internal/domain"
)

// ClaimAchievementReward banks an unlocked achievement's XP onto a chosen
// skill. Each achievement's reward can be claimed once.
func ClaimAchievementReward(state *domain.GameState, achievementID string, skillID domain.SkillID) (int, error) {
	def := achievement.ByID(achievementID)
	if def == nil || !state.HasAchievement(achievementID) {
		return 0, domain.ErrAchievementNotFound
	}
	for _, id := range state.CompletedAchievementRewards {
		if id == achievementID {
			return 0, domain.ErrRewardAlreadyClaimed
		}
	}
	sk := state.FindSkill(skillID)
	if sk == nil {
		return 0, domain.ErrSkillNotFound
	}

	sk.XP += def.XP
	state.CompletedAchievementRewards = append(state.CompletedAchievementRewards, achievementID)
	return def.XP, nil
}
