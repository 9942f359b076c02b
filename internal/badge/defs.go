package badge

import (
	"strconv"
	"strings"

	"github.com/ascend-app/ascend/internal/domain"
)

// Cross-skill badge ids
const (
	IDWellRounded    = "well_rounded"
	IDRenaissanceMan = "renaissance_man"
	IDTheOne         = "the_one"
)

// Pool holds every badge: five level tiers per tracked skill plus the three
// cross-skill badges (empty SkillID, all skills must meet RequiredLevel).
var Pool = buildPool()

type skillBadgeNames struct {
	names [5]string
	icons [5]string
}

var perSkillNames = map[domain.SkillID]skillBadgeNames{
	domain.SkillStrength: {
		names: [5]string{"First Pump", "Beast Mode", "Iron Titan", "War Machine", "God of War"},
		icons: [5]string{"💪", "🏋️", "⛓️", "🔱", "⚔️"},
	},
	domain.SkillEndurance: {
		names: [5]string{"First Mile", "Cardio King", "Marathon Runner", "Unstoppable", "Perpetual Motion"},
		icons: [5]string{"🏃", "🫁", "🏅", "🌊", "⚡"},
	},
	domain.SkillDiscipline: {
		names: [5]string{"Early Riser", "Habit Forger", "Monk Mode", "Iron Will", "The Unbreakable"},
		icons: [5]string{"⏰", "🔥", "🧘", "🗡️", "💎"},
	},
	domain.SkillIntellect: {
		names: [5]string{"Curious Mind", "Quick Learner", "Sage", "Genius", "Omniscient"},
		icons: [5]string{"📖", "🎓", "📚", "🧬", "🌌"},
	},
	domain.SkillSocial: {
		names: [5]string{"Ice Breaker", "Connector", "Social Butterfly", "Influencer", "Charisma Lord"},
		icons: [5]string{"👋", "🤝", "🦋", "✨", "👑"},
	},
	domain.SkillMind: {
		names: [5]string{"Mindful", "Inner Peace", "Zen Master", "Enlightened", "Transcendent"},
		icons: [5]string{"🧘", "☮️", "🪷", "🌅", "🕉️"},
	},
	domain.SkillDurability: {
		names: [5]string{"Tough Cookie", "Iron Skin", "Bulletproof", "Tank", "Immortal"},
		icons: [5]string{"🍪", "🛡️", "🦾", "🏔️", "♾️"},
	},
}

var tierLevels = [5]struct {
	level int
	tier  domain.BadgeTier
}{
	{5, domain.TierBronze},
	{15, domain.TierSilver},
	{30, domain.TierGold},
	{50, domain.TierDiamond},
	{75, domain.TierMaster},
}

func buildPool() []domain.Badge {
	var pool []domain.Badge
	for _, id := range domain.TrackedSkillIDs {
		n := perSkillNames[id]
		for i, tl := range tierLevels {
			pool = append(pool, domain.Badge{
				ID:            string(id) + "_lv" + strconv.Itoa(tl.level),
				Name:          n.names[i],
				Icon:          n.icons[i],
				Desc:          "Reached Level " + strconv.Itoa(tl.level) + " in " + titleCase(string(id)),
				SkillID:       id,
				RequiredLevel: tl.level,
				Tier:          tl.tier,
			})
		}
	}

	pool = append(pool,
		domain.Badge{
			ID: IDWellRounded, Name: "Well-Rounded", Icon: "🎯",
			Desc:          "Reached Level 10 in all 7 skills",
			RequiredLevel: 10, Tier: domain.TierSpecial,
		},
		domain.Badge{
			ID: IDRenaissanceMan, Name: "Renaissance Man", Icon: "🏛️",
			Desc:          "Reached Level 25 in all 7 skills",
			RequiredLevel: 25, Tier: domain.TierSpecial,
		},
		domain.Badge{
			ID: IDTheOne, Name: "The One", Icon: "🌟",
			Desc:          "Reached Level 50 in all 7 skills",
			RequiredLevel: 50, Tier: domain.TierSpecial,
		},
	)
	return pool
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ByID returns the badge definition for an id, or nil
func ByID(id string) *domain.Badge {
	for i := range Pool {
		if Pool[i].ID == id {
			return &Pool[i]
		}
	}
	return nil
}
