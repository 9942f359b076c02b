package domain

// GameState is the full per-user progression state. The persistence
// collaborator stores and reloads it verbatim as one serialization unit, so
// every field must round-trip exactly through JSON.
type GameState struct {
	Skills                      []SkillState              `json:"skills"`
	Log                         []ActionLogEntry          `json:"log"`
	UnlockedAchievements        []string                  `json:"unlockedAchievements"`
	UnlockedBadges              []string                  `json:"unlockedBadges"`
	CompletedAchievementRewards []string                  `json:"completedAchievementRewards"`
	Streaks                     StreakSet                 `json:"streaks"`
	HardcoreMode                bool                      `json:"hardcoreMode"`
	Penalty                     PenaltyState              `json:"penalty"`
	LastDecayDate               string                    `json:"lastDecayDate,omitempty"`
	CompletedQuests             QuestCompletion           `json:"completedQuests"`
	Todos                       TodoState                 `json:"todos"`
	MoneyLog                    MoneyLog                  `json:"moneyLog"`
	CustomActions               map[SkillID][]SkillAction `json:"customActions"`
	CreatedAt                   int64                     `json:"createdAt"`
}

// FindSkill returns a pointer into Skills for the given id, or nil
func (s *GameState) FindSkill(id SkillID) *SkillState {
	for i := range s.Skills {
		if s.Skills[i].ID == id {
			return &s.Skills[i]
		}
	}
	return nil
}

// HasAchievement reports whether the achievement id is already unlocked
func (s *GameState) HasAchievement(id string) bool {
	for _, a := range s.UnlockedAchievements {
		if a == id {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge id is already unlocked
func (s *GameState) HasBadge(id string) bool {
	for _, b := range s.UnlockedBadges {
		if b == id {
			return true
		}
	}
	return false
}
