package domain

// BadgeTier is the display tier of a badge
type BadgeTier string

const (
	TierBronze  BadgeTier = "bronze"
	TierSilver  BadgeTier = "silver"
	TierGold    BadgeTier = "gold"
	TierDiamond BadgeTier = "diamond"
	TierMaster  BadgeTier = "master"
	TierSpecial BadgeTier = "special"
)

// Badge is a static level-threshold unlock definition. An empty SkillID
// denotes a cross-skill badge requiring every tracked skill to reach
// RequiredLevel.
type Badge struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Icon          string    `json:"icon"`
	Desc          string    `json:"desc"`
	SkillID       SkillID   `json:"skillId,omitempty"`
	RequiredLevel int       `json:"requiredLevel"`
	Tier          BadgeTier `json:"tier"`
}
