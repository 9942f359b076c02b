package domain

// PenaltyTier is the consecutive-miss severity under hardcore mode
type PenaltyTier string

const (
	TierNone        PenaltyTier = ""
	TierWarning     PenaltyTier = "warning"
	TierPenaltyZone PenaltyTier = "penaltyZone"
	TierCritical    PenaltyTier = "critical"
)

// PenaltyState is the hardcore-mode miss-penalty state machine.
// Tier is always a pure function of ConsecutiveMisses; transitions happen
// at most once per calendar day.
type PenaltyState struct {
	Tier                PenaltyTier `json:"tier,omitempty"`
	ConsecutiveMisses   int         `json:"consecutiveMisses"`
	PenaltyZoneSurvived int         `json:"penaltyZoneSurvived"`
	XPDecayed           int         `json:"xpDecayed"`
	LastCheckDate       string      `json:"lastCheckDate,omitempty"`
	PenaltyQuestActive  bool        `json:"penaltyQuestActive"`
}

// DecayLoss reports XP removed from one skill by a decay run
type DecayLoss struct {
	SkillID SkillID `json:"skillId"`
	Amount  int     `json:"amount"`
}

// DecayResult is the outcome of a daily decay check
type DecayResult struct {
	Decayed bool        `json:"decayed"`
	Losses  []DecayLoss `json:"losses"`
}

// EscapeResult is the outcome of a penalty-escape attempt
type EscapeResult struct {
	Escaped     bool        `json:"escaped"`
	FromTier    PenaltyTier `json:"fromTier,omitempty"`
	RewardXP    int         `json:"rewardXp"`
	Achievement string      `json:"achievement,omitempty"`
}
