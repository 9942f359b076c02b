package game

import (
	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/level"
	"github.com/ascend-app/ascend/internal/skill"
	"github.com/ascend-app/ascend/internal/streak"
)

// SkillView is one skill's display state
type SkillView struct {
	ID       domain.SkillID    `json:"id"`
	Name     string            `json:"name"`
	Icon     string            `json:"icon"`
	Color    string            `json:"color"`
	XP       int               `json:"xp"`
	Level    int               `json:"level"`
	XPToNext int               `json:"xpToNext"`
	Progress float64           `json:"progress"`
	Title    string            `json:"title"`
	Streak   domain.StreakData `json:"streak"`
}

// Profile is the aggregate progression view for one user
type Profile struct {
	UserID           string              `json:"userId"`
	TotalLevel       int                 `json:"totalLevel"`
	Title            string              `json:"title"`
	Skills           []SkillView         `json:"skills"`
	GlobalStreak     domain.StreakData   `json:"globalStreak"`
	StreakMultiplier float64             `json:"streakMultiplier"`
	HardcoreMode     bool                `json:"hardcoreMode"`
	Penalty          domain.PenaltyState `json:"penalty"`
	TotalActions     int                 `json:"totalActions"`
	AchievementCount int                 `json:"achievementCount"`
	BadgeCount       int                 `json:"badgeCount"`
	CreatedAt        int64               `json:"createdAt"`
}

// StreakOverview holds the global streak alongside every per-skill streak
type StreakOverview struct {
	Global     domain.StreakData                    `json:"global"`
	Multiplier float64                              `json:"multiplier"`
	PerSkill   map[domain.SkillID]domain.StreakData `json:"perSkill"`
}

// ActionOutcome is the result of logging an action, including any penalty
// escape that the new activity triggered
type ActionOutcome struct {
	domain.LogActionResult
	Escape *domain.EscapeResult `json:"escape,omitempty"`
}

// QuestView is one active quest with live progress
type QuestView struct {
	domain.Quest
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}

// QuestBoard holds today's and this week's active quests
type QuestBoard struct {
	DailyDate string      `json:"dailyDate"`
	WeekKey   string      `json:"weekKey"`
	Daily     []QuestView `json:"daily"`
	Weekly    []QuestView `json:"weekly"`
}

// AchievementView is one achievement definition with unlock state
type AchievementView struct {
	domain.Achievement
	Unlocked      bool `json:"unlocked"`
	RewardClaimed bool `json:"rewardClaimed"`
}

// BadgeView is one badge definition with unlock state
type BadgeView struct {
	domain.Badge
	Unlocked bool `json:"unlocked"`
}

// MoneyOverview is the money track display state
type MoneyOverview struct {
	CurrentNetWorth float64             `json:"currentNetWorth"`
	Formatted       string              `json:"formatted"`
	Level           int                 `json:"level"`
	Title           string              `json:"title"`
	Progress        float64             `json:"progress"`
	Entries         []domain.MoneyEntry `json:"entries"`
}

// LeaderboardEntry ranks one user by total level
type LeaderboardEntry struct {
	UserID       string `json:"userId"`
	TotalLevel   int    `json:"totalLevel"`
	Title        string `json:"title"`
	TotalActions int    `json:"totalActions"`
	Achievements int    `json:"achievements"`
}

func buildProfile(userID string, state *domain.GameState) *Profile {
	totalLevel := level.TotalLevel(state.Skills)

	skills := make([]SkillView, 0, len(state.Skills))
	for _, sk := range state.Skills {
		skills = append(skills, buildSkillView(state, sk))
	}

	return &Profile{
		UserID:           userID,
		TotalLevel:       totalLevel,
		Title:            level.Title(totalLevel, state.HardcoreMode, state.Penalty.Tier),
		Skills:           skills,
		GlobalStreak:     state.Streaks.Global,
		StreakMultiplier: streak.Multiplier(state.Streaks.Global.Current),
		HardcoreMode:     state.HardcoreMode,
		Penalty:          state.Penalty,
		TotalActions:     len(state.Log),
		AchievementCount: len(state.UnlockedAchievements),
		BadgeCount:       len(state.UnlockedBadges),
		CreatedAt:        state.CreatedAt,
	}
}

func buildSkillView(state *domain.GameState, sk domain.SkillState) SkillView {
	view := SkillView{
		ID:       sk.ID,
		XP:       sk.XP,
		Level:    level.Level(sk.XP),
		XPToNext: level.XPToNext(sk.XP),
		Progress: level.Progress(sk.XP),
		Title:    level.SkillTitle(sk.ID, level.Level(sk.XP)),
		Streak:   state.Streaks.PerSkill[sk.ID],
	}
	if def := skill.Def(sk.ID); def != nil {
		view.Name = def.Name
		view.Icon = def.Icon
		view.Color = def.Color
	}
	return view
}
