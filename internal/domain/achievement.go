package domain

// AchievementKind selects which rule an achievement definition carries.
// Definitions are plain data evaluated by the achievement engine's dispatch
// function, so they stay serializable.
type AchievementKind string

const (
	// KindTotalLevel unlocks at a total-level threshold
	KindTotalLevel AchievementKind = "total_level"
	// KindSkillLevel unlocks when one skill reaches a level threshold
	KindSkillLevel AchievementKind = "skill_level"
	// KindActionCount unlocks at a lifetime logged-action threshold
	KindActionCount AchievementKind = "action_count"
	// KindStreak unlocks at a global-streak threshold
	KindStreak AchievementKind = "streak"
	// KindBalance unlocks when every tracked skill reaches a level threshold
	KindBalance AchievementKind = "balance"
	// KindCollection unlocks at an unlocked-achievement-count threshold
	KindCollection AchievementKind = "collection"
	// KindPenaltyEscape never unlocks in the generic scan; the decay engine
	// unlocks it explicitly at the moment of escape
	KindPenaltyEscape AchievementKind = "penalty_escape"
)

// Achievement is a static unlock-rule definition
type Achievement struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Desc      string          `json:"desc"`
	Icon      string          `json:"icon"`
	XP        int             `json:"xp"`
	Kind      AchievementKind `json:"kind"`
	Skill     SkillID         `json:"skill,omitempty"` // for skill_level
	Threshold int             `json:"threshold"`
	Tier      PenaltyTier     `json:"tier,omitempty"` // for penalty_escape
}

// AchievementContext is the read-only aggregate snapshot unlock rules are
// evaluated against after every logged action.
type AchievementContext struct {
	Skills               []SkillState
	Log                  []ActionLogEntry
	UnlockedAchievements []string
	GlobalStreak         int
	TotalActions         int
	TotalLevel           int
}
