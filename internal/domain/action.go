package domain

// MaxLogEntries caps the retained action log; oldest entries are evicted
const MaxLogEntries = 500

// ActionLogEntry is an immutable record of one logged action.
// XP is the total awarded amount including the streak bonus.
type ActionLogEntry struct {
	ID          string  `json:"id"`
	SkillID     SkillID `json:"skillId"`
	ActionID    string  `json:"actionId"`
	ActionName  string  `json:"actionName"`
	XP          int     `json:"xp"`
	BaseXP      int     `json:"baseXp"`
	StreakBonus int     `json:"streakBonus"`
	Timestamp   int64   `json:"timestamp"` // unix millis
}

// LogActionResult is the structured outcome of logging a single action,
// consumed by the notification/UI collaborator.
type LogActionResult struct {
	XPEarned        int      `json:"xpEarned"`
	LeveledUp       bool     `json:"leveledUp"`
	PreviousLevel   int      `json:"previousLevel"`
	NewLevel        int      `json:"newLevel"`
	NewAchievements []string `json:"newAchievements"`
	QuestsCompleted []string `json:"questsCompleted"`
	NewBadges       []string `json:"newBadges"`
}
