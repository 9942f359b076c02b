package domain

// StreakData tracks consecutive-day activity for one scope.
// Invariant: Best >= Current at all times.
type StreakData struct {
	Current        int    `json:"current"`
	Best           int    `json:"best"`
	LastActiveDate string `json:"lastActiveDate,omitempty"` // YYYY-MM-DD, empty until first activity
}

// StreakSet holds the global streak plus one streak per skill
type StreakSet struct {
	Global   StreakData             `json:"global"`
	PerSkill map[SkillID]StreakData `json:"perSkill"`
}

// NewStreakSet returns an empty streak set with no recorded activity
func NewStreakSet() StreakSet {
	return StreakSet{PerSkill: make(map[SkillID]StreakData)}
}
