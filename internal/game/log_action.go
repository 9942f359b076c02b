package game

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ascend-app/ascend/internal/achievement"
	"github.com/ascend-app/ascend/internal/badge"
	"github.com/ascend-app/ascend/internal/clock"
	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/level"
	"github.com/ascend-app/ascend/internal/quest"
	"github.com/ascend-app/ascend/internal/streak"
)

// LogAction applies one logged action to the state: XP with streak bonus,
// log entry, streak advance, todo auto-complete, then the achievement, badge
// and quest scans. An unknown skill id is a zero-effect no-op. The caller
// supplies baseXP resolved from the catalog or a custom action.
func LogAction(state *domain.GameState, skillID domain.SkillID, actionID, actionName string, baseXP int, now time.Time) domain.LogActionResult {
	sk := state.FindSkill(skillID)
	if sk == nil {
		return domain.LogActionResult{}
	}

	previousLevel := level.Level(sk.XP)

	// the bonus reads the global streak as it stood before this action
	mult := streak.Multiplier(state.Streaks.Global.Current)
	streakBonus := int(math.Floor(float64(baseXP) * (mult - 1)))
	totalXP := baseXP + streakBonus

	sk.XP += totalXP
	newLevel := level.Level(sk.XP)

	entry := domain.ActionLogEntry{
		ID:          uuid.NewString(),
		SkillID:     skillID,
		ActionID:    actionID,
		ActionName:  actionName,
		XP:          totalXP,
		BaseXP:      baseXP,
		StreakBonus: streakBonus,
		Timestamp:   now.UnixMilli(),
	}
	state.Log = append([]domain.ActionLogEntry{entry}, state.Log...)
	if len(state.Log) > domain.MaxLogEntries {
		state.Log = state.Log[:domain.MaxLogEntries]
	}

	state.Streaks = streak.UpdateSet(state.Streaks, skillID, now)

	completeMatchingTodo(state, skillID, actionID)

	newAchievements := achievement.Check(domain.AchievementContext{
		Skills:               state.Skills,
		Log:                  state.Log,
		UnlockedAchievements: state.UnlockedAchievements,
		GlobalStreak:         state.Streaks.Global.Current,
		TotalActions:         len(state.Log),
		TotalLevel:           level.TotalLevel(state.Skills),
	})
	state.UnlockedAchievements = append(state.UnlockedAchievements, newAchievements...)

	newBadges := badge.Check(state.Skills, state.UnlockedBadges)
	state.UnlockedBadges = append(state.UnlockedBadges, newBadges...)

	questsCompleted := evaluateQuests(state, now)

	return domain.LogActionResult{
		XPEarned:        totalXP,
		LeveledUp:       newLevel > previousLevel,
		PreviousLevel:   previousLevel,
		NewLevel:        newLevel,
		NewAchievements: newAchievements,
		QuestsCompleted: questsCompleted,
		NewBadges:       newBadges,
	}
}

func completeMatchingTodo(state *domain.GameState, skillID domain.SkillID, actionID string) {
	for i := range state.Todos.Items {
		item := &state.Todos.Items[i]
		if !item.Completed && item.SkillID == skillID && item.ActionID == actionID {
			item.Completed = true
			return
		}
	}
}

// evaluateQuests rolls the completion windows forward if the date changed,
// then marks any newly met daily/weekly quests. Completion is idempotent per
// quest id per window.
func evaluateQuests(state *domain.GameState, now time.Time) []string {
	today := clock.DateKey(now)
	weekKey := clock.WeekKey(now)
	rollQuestWindows(state, today, weekKey)

	todayLog := logSince(state.Log, today, now.Location())
	weekLog := logSince(state.Log, weekKey, now.Location())

	var completed []string
	for _, q := range quest.DailyQuests(today) {
		if state.CompletedQuests.Daily[q.ID] {
			continue
		}
		if quest.IsComplete(q, todayLog) {
			state.CompletedQuests.Daily[q.ID] = true
			completed = append(completed, q.ID)
		}
	}
	for _, q := range quest.WeeklyQuests(weekKey) {
		if state.CompletedQuests.Weekly[q.ID] {
			continue
		}
		if quest.IsComplete(q, weekLog) {
			state.CompletedQuests.Weekly[q.ID] = true
			completed = append(completed, q.ID)
		}
	}
	return completed
}

func rollQuestWindows(state *domain.GameState, today, weekKey string) {
	if state.CompletedQuests.DailyDate != today || state.CompletedQuests.Daily == nil {
		state.CompletedQuests.DailyDate = today
		state.CompletedQuests.Daily = make(map[string]bool)
	}
	if state.CompletedQuests.WeeklyDate != weekKey || state.CompletedQuests.Weekly == nil {
		state.CompletedQuests.WeeklyDate = weekKey
		state.CompletedQuests.Weekly = make(map[string]bool)
	}
}

// logSince returns the entries on or after the given YYYY-MM-DD date key.
// Date keys compare lexicographically, so a plain string compare works.
func logSince(log []domain.ActionLogEntry, date string, loc *time.Location) []domain.ActionLogEntry {
	var out []domain.ActionLogEntry
	for _, e := range log {
		if clock.DateKey(time.UnixMilli(e.Timestamp).In(loc)) >= date {
			out = append(out, e)
		}
	}
	return out
}
