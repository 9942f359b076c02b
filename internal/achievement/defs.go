package achievement

import (
	"fmt"

	"github.com/ascend-app/ascend/internal/domain"
)

// Penalty-escape achievement ids, unlocked only by the hardcore engine's
// escape transition. Their generic check always fails.
const (
	IDEscapePenaltyZone = "ach_escape_penalty_zone"
	IDEscapeCritical    = "ach_escape_critical"
)

// Pool is the fixed ordered achievement pool. Newly-unlocked achievements
// are reported in pool order, so the order is part of observable behavior.
var Pool = buildPool()

func buildPool() []domain.Achievement {
	var pool []domain.Achievement

	// Total-level tiers
	levelTiers := []struct {
		threshold int
		id, name  string
		xp        int
	}{
		{10, "ach_lv10", "Bro Awakening", 200},
		{25, "ach_lv25", "Rising Star", 400},
		{50, "ach_lv50", "Half Century", 600},
		{100, "ach_lv100", "Centurion", 1000},
		{200, "ach_lv200", "Beyond Mortal", 2000},
		{300, "ach_lv300", "Legendary Being", 3000},
		{500, "ach_lv500", "Deity in the Making", 5000},
	}
	for _, t := range levelTiers {
		pool = append(pool, domain.Achievement{
			ID: t.id, Name: t.name, Icon: "🌟", XP: t.xp,
			Desc:      fmt.Sprintf("Reach total level %d", t.threshold),
			Kind:      domain.KindTotalLevel,
			Threshold: t.threshold,
		})
	}

	// Per-skill level tiers, generated from a template to avoid 28 hand
	// written entries
	abbrs := map[domain.SkillID]string{
		domain.SkillStrength:   "str",
		domain.SkillEndurance:  "end",
		domain.SkillDiscipline: "dis",
		domain.SkillIntellect:  "int",
		domain.SkillSocial:     "soc",
		domain.SkillMind:       "mind",
		domain.SkillDurability: "dur",
	}
	skillTierXP := map[int]int{10: 150, 25: 400, 50: 800, 75: 1500}
	for _, id := range domain.TrackedSkillIDs {
		for _, threshold := range []int{10, 25, 50, 75} {
			pool = append(pool, domain.Achievement{
				ID:        fmt.Sprintf("ach_%s_%d", abbrs[id], threshold),
				Name:      fmt.Sprintf("%s Lv%d", abbrUpper(abbrs[id]), threshold),
				Desc:      fmt.Sprintf("Reach %s level %d", id, threshold),
				Icon:      "🏆",
				XP:        skillTierXP[threshold],
				Kind:      domain.KindSkillLevel,
				Skill:     id,
				Threshold: threshold,
			})
		}
	}

	// Lifetime action-count tiers
	actionTiers := []struct {
		threshold int
		id, name  string
		xp        int
	}{
		{1, "ach_first_blood", "First Blood", 50},
		{50, "ach_50_actions", "Getting Serious", 200},
		{100, "ach_100_actions", "Centurion Grinder", 400},
		{500, "ach_500_actions", "Relentless", 800},
		{1000, "ach_1000_actions", "Machine", 1500},
		{2500, "ach_2500_actions", "Obsessed", 2500},
		{5000, "ach_5000_actions", "Life of Grind", 5000},
	}
	for _, t := range actionTiers {
		pool = append(pool, domain.Achievement{
			ID: t.id, Name: t.name, Icon: "🎯", XP: t.xp,
			Desc:      fmt.Sprintf("Log %d total actions", t.threshold),
			Kind:      domain.KindActionCount,
			Threshold: t.threshold,
		})
	}

	// Global-streak tiers
	streakTiers := []struct {
		threshold int
		name      string
		xp        int
	}{
		{3, "Warming Up", 100},
		{7, "Week Warrior", 250},
		{14, "Fortnight Fighter", 500},
		{30, "Monthly Monster", 1000},
		{60, "Two-Month Terror", 2000},
		{100, "Century Streak", 3000},
		{180, "Half-Year Hero", 5000},
		{365, "Year of the Grind", 10000},
	}
	for _, t := range streakTiers {
		pool = append(pool, domain.Achievement{
			ID:   fmt.Sprintf("ach_streak%d", t.threshold),
			Name: t.name, Icon: "🔥", XP: t.xp,
			Desc:      fmt.Sprintf("%d-day streak", t.threshold),
			Kind:      domain.KindStreak,
			Threshold: t.threshold,
		})
	}

	// Balance: every tracked skill at the threshold simultaneously
	balanceTiers := []struct {
		threshold int
		name      string
		xp        int
	}{
		{5, "Equilibrium", 500},
		{10, "Well Balanced", 1000},
		{15, "Harmony", 1500},
		{25, "Renaissance Soul", 3000},
		{50, "Perfect Balance", 6000},
	}
	for _, t := range balanceTiers {
		pool = append(pool, domain.Achievement{
			ID:   fmt.Sprintf("ach_bal%d", t.threshold),
			Name: t.name, Icon: "⚖️", XP: t.xp,
			Desc:      fmt.Sprintf("All skills at level %d+", t.threshold),
			Kind:      domain.KindBalance,
			Threshold: t.threshold,
		})
	}

	// Collection meta-tiers
	pool = append(pool,
		domain.Achievement{
			ID: "ach_collect10", Name: "Collector", Icon: "📀", XP: 500,
			Desc: "Unlock 10 achievements", Kind: domain.KindCollection, Threshold: 10,
		},
		domain.Achievement{
			ID: "ach_collect30", Name: "Achievement Hunter", Icon: "💿", XP: 1000,
			Desc: "Unlock 30 achievements", Kind: domain.KindCollection, Threshold: 30,
		},
	)

	// Penalty escapes: reserved for the hardcore engine's explicit trigger
	pool = append(pool,
		domain.Achievement{
			ID: IDEscapePenaltyZone, Name: "Back from the Brink", Icon: "🩹", XP: 500,
			Desc: "Escape the penalty zone", Kind: domain.KindPenaltyEscape,
			Tier: domain.TierPenaltyZone,
		},
		domain.Achievement{
			ID: IDEscapeCritical, Name: "Death's Door", Icon: "💀", XP: 1000,
			Desc: "Escape critical status", Kind: domain.KindPenaltyEscape,
			Tier: domain.TierCritical,
		},
	)

	return pool
}

func abbrUpper(abbr string) string {
	out := make([]byte, len(abbr))
	for i := 0; i < len(abbr); i++ {
		c := abbr[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

// ByID returns the achievement definition for an id, or nil
func ByID(id string) *domain.Achievement {
	for i := range Pool {
		if Pool[i].ID == id {
			return &Pool[i]
		}
	}
	return nil
}

// Count returns the pool size
func Count() int {
	return len(Pool)
}
