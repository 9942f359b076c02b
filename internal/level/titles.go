package level

import "github.com/ascend-app/ascend/internal/domain"

type titleStep struct {
	threshold int
	title     string
}

// Hardcore penalty tiers override the earned title unconditionally
const (
	TitlePunished  = "Punished"
	TitleCondemned = "Condemned"
)

var globalTitles = []titleStep{
	{0, "Unawakened"},
	{7, "Initiate"},
	{14, "Apprentice"},
	{28, "Journeyman"},
	{42, "Adept"},
	{56, "Veteran"},
	{70, "Elite"},
	{100, "Champion"},
	{140, "Master"},
	{175, "Grandmaster"},
	{210, "Legend"},
	{280, "Mythic"},
	{350, "Transcendent"},
	{420, "Immortal"},
	{490, "Deity"},
	{560, "Cosmic Being"},
	{630, "Reality Warper"},
	{680, "Omnipotent"},
	{693, "The One"},
}

var skillTitles = map[domain.SkillID][]titleStep{
	domain.SkillStrength: {
		{1, "Weakling"}, {5, "Brawler"}, {10, "Warrior"}, {15, "Gladiator"},
		{25, "Titan"}, {35, "Demigod"}, {50, "Hercules"}, {65, "World Breaker"},
		{80, "Force of Nature"}, {90, "God of War"}, {95, "The Unbreakable"},
		{99, "Strength Incarnate"},
	},
	domain.SkillEndurance: {
		{1, "Couch Potato"}, {5, "Jogger"}, {10, "Runner"}, {15, "Marathoner"},
		{25, "Iron Lung"}, {35, "Unstoppable"}, {50, "Ultra Beast"},
		{65, "Perpetual Motion"}, {80, "Eternal Engine"}, {90, "Limitless"},
		{95, "Beyond Human"}, {99, "Endurance Incarnate"},
	},
	domain.SkillDiscipline: {
		{1, "Undisciplined"}, {5, "Novice"}, {10, "Dedicated"}, {15, "Committed"},
		{25, "Iron Will"}, {35, "Unshakeable"}, {50, "Ascetic"},
		{65, "Master of Self"}, {80, "Steel Mind"}, {90, "Transcendent"},
		{95, "Above Temptation"}, {99, "Discipline Incarnate"},
	},
	domain.SkillIntellect: {
		{1, "Ignorant"}, {5, "Student"}, {10, "Scholar"}, {15, "Thinker"},
		{25, "Sage"}, {35, "Philosopher"}, {50, "Genius"}, {65, "Visionary"},
		{80, "Oracle"}, {90, "Omniscient"}, {95, "Reality Hacker"},
		{99, "Intellect Incarnate"},
	},
	domain.SkillSocial: {
		{1, "Hermit"}, {5, "Acquaintance"}, {10, "Socialite"}, {15, "Connector"},
		{25, "Influencer"}, {35, "Leader"}, {50, "Icon"}, {65, "Legend"},
		{80, "Movement"}, {90, "Cultural Force"}, {95, "Heart of the People"},
		{99, "Social Incarnate"},
	},
	domain.SkillMind: {
		{1, "Restless"}, {5, "Seeker"}, {10, "Mindful"}, {15, "Centered"},
		{25, "Awakened"}, {35, "Enlightened"}, {50, "Zen Master"},
		{65, "Soul Walker"}, {80, "Spirit Guide"}, {90, "Ascended"},
		{95, "One with All"}, {99, "Mind Incarnate"},
	},
	domain.SkillDurability: {
		{1, "Fragile"}, {5, "Recovering"}, {10, "Resilient"}, {15, "Hardy"},
		{25, "Fortified"}, {35, "Indestructible"}, {50, "Regenerator"},
		{65, "Wolverine"}, {80, "Immortal Body"}, {90, "Divine Vessel"},
		{95, "Unbreakable"}, {99, "Durability Incarnate"},
	},
}

// Title returns the display title for a total level. Under hardcore mode the
// penaltyZone and critical tiers replace the earned title entirely.
func Title(totalLevel int, hardcoreMode bool, penaltyTier domain.PenaltyTier) string {
	if hardcoreMode && penaltyTier == domain.TierCritical {
		return TitleCondemned
	}
	if hardcoreMode && penaltyTier == domain.TierPenaltyZone {
		return TitlePunished
	}
	return highestMet(globalTitles, totalLevel)
}

// SkillTitle returns the per-skill title for a skill level
func SkillTitle(skillID domain.SkillID, lvl int) string {
	steps, ok := skillTitles[skillID]
	if !ok {
		return "Unknown"
	}
	return highestMet(steps, lvl)
}

func highestMet(steps []titleStep, value int) string {
	title := steps[0].title
	for _, s := range steps {
		if value >= s.threshold {
			title = s.title
		}
	}
	return title
}
