package domain

// SkillID identifies one of the tracked life skills
type SkillID string

// The seven XP-based skills. Money is tracked separately and never
// participates in XP-table leveling or the global total level.
const (
	SkillStrength   SkillID = "strength"
	SkillEndurance  SkillID = "endurance"
	SkillDiscipline SkillID = "discipline"
	SkillIntellect  SkillID = "intellect"
	SkillSocial     SkillID = "social"
	SkillMind       SkillID = "mind"
	SkillDurability SkillID = "durability"
	SkillMoney      SkillID = "money"
)

// TrackedSkillIDs lists the XP-based skills in canonical order
var TrackedSkillIDs = []SkillID{
	SkillStrength,
	SkillEndurance,
	SkillDiscipline,
	SkillIntellect,
	SkillSocial,
	SkillMind,
	SkillDurability,
}

// SkillState holds a user's accumulated XP in one skill
type SkillState struct {
	ID SkillID `json:"id"`
	XP int     `json:"xp"`
}

// SkillAction is a loggable action within a skill's menu
type SkillAction struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	XP     int    `json:"xp"`
	Desc   string `json:"desc,omitempty"`
	Custom bool   `json:"custom,omitempty"`
}

// SkillDefinition is a static catalog entry for a skill
type SkillDefinition struct {
	ID      SkillID       `json:"id"`
	Name    string        `json:"name"`
	Icon    string        `json:"icon"`
	Color   string        `json:"color"`
	Desc    string        `json:"desc"`
	Actions []SkillAction `json:"actions"`
}
