// Package game orchestrates the progression engine: every logged action runs
// the level table, streak tracker, quest engine, and achievement/badge scans
// as one synchronous transaction over a user's GameState.
package game

import (
	"time"

	"github.com/ascend-app/ascend/internal/clock"
	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/skill"
)

// NewState returns a fresh profile: every tracked skill at zero XP, empty
// collections, and quest windows keyed to the current date.
func NewState(now time.Time) *domain.GameState {
	return &domain.GameState{
		Skills:                      skill.DefaultStates(),
		Log:                         []domain.ActionLogEntry{},
		UnlockedAchievements:        []string{},
		UnlockedBadges:              []string{},
		CompletedAchievementRewards: []string{},
		Streaks:                     domain.NewStreakSet(),
		CompletedQuests:             domain.NewQuestCompletion(clock.DateKey(now), clock.WeekKey(now)),
		Todos:                       domain.TodoState{LastResetDate: clock.DateKey(now), Items: []domain.TodoItem{}},
		MoneyLog:                    domain.MoneyLog{Entries: []domain.MoneyEntry{}},
		CustomActions:               map[domain.SkillID][]domain.SkillAction{},
		CreatedAt:                   now.UnixMilli(),
	}
}
