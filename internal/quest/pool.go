package quest

import (
	"fmt"

	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/skill"
)

// DailyCount and WeeklyCount are how many quests are active per window
const (
	DailyCount  = 5
	WeeklyCount = 3
)

// DailyPool (81 quests) and WeeklyPool (29 quests) are fixed ordered pools.
// The order matters: the seeded shuffle permutes indexes of these slices, so
// reordering the pool changes every historical day's quest set.
var (
	DailyPool  = buildDailyPool()
	WeeklyPool = buildWeeklyPool()
)

func buildDailyPool() []domain.Quest {
	var pool []domain.Quest

	// Raw activity volume
	for _, target := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 15} {
		pool = append(pool, domain.Quest{
			ID:     fmt.Sprintf("dq_actions_%d", target),
			Name:   fmt.Sprintf("Momentum x%d", target),
			Desc:   fmt.Sprintf("Log %d actions today", target),
			Type:   domain.QuestTypeActions,
			Target: target,
			XP:     30 * target,
		})
	}

	// Breadth across skills
	for _, target := range []int{2, 3, 4, 5, 6, 7} {
		pool = append(pool, domain.Quest{
			ID:     fmt.Sprintf("dq_unique_%d", target),
			Name:   fmt.Sprintf("Spread the Grind %d", target),
			Desc:   fmt.Sprintf("Log actions in %d different skills today", target),
			Type:   domain.QuestTypeUniqueSkills,
			Target: target,
			XP:     50 * target,
		})
	}

	// Per-skill volume
	for _, id := range domain.TrackedSkillIDs {
		def := skill.Def(id)
		for _, target := range []int{1, 2, 3, 4} {
			pool = append(pool, domain.Quest{
				ID:     fmt.Sprintf("dq_%s_count_%d", id, target),
				Name:   fmt.Sprintf("%s Focus x%d", def.Name, target),
				Desc:   fmt.Sprintf("Log %d %s actions today", target, def.Name),
				Type:   domain.QuestTypeSkillCount,
				Skill:  id,
				Target: target,
				XP:     40 * target,
			})
		}
	}

	// Touch a specific skill at least once, one quest per catalog skill with
	// a named flavor (34 fixed-action variants would collide with custom
	// menus, so skill_action keys on the skill only)
	skillActionXP := map[domain.SkillID]int{
		domain.SkillStrength:   60,
		domain.SkillEndurance:  60,
		domain.SkillDiscipline: 55,
		domain.SkillIntellect:  55,
		domain.SkillSocial:     65,
		domain.SkillMind:       55,
		domain.SkillDurability: 60,
	}
	flavors := map[domain.SkillID][]string{
		domain.SkillStrength:   {"Pump Day", "Iron Hour", "Heavy Hands", "Raw Power", "Forge the Body"},
		domain.SkillEndurance:  {"Keep Moving", "Wind Sprint", "Long Haul", "Second Wind", "Pace Setter"},
		domain.SkillDiscipline: {"Hold the Line", "No Excuses", "Routine Keeper", "Steel Habit", "Own the Morning"},
		domain.SkillIntellect:  {"Feed the Brain", "Page Turner", "Think Deep", "Level the Mind", "Study Session"},
		domain.SkillSocial:     {"Reach Out", "Say Hello", "Social Spark", "Stay Connected", "Make a Move"},
		domain.SkillMind:       {"Inner Work", "Quiet Hour", "Breathe Easy", "Center Yourself", "Soul Check"},
		domain.SkillDurability: {"Recover Right", "Body Maintenance", "Rest Ritual", "Recharge", "Self Repair"},
	}
	for _, id := range domain.TrackedSkillIDs {
		def := skill.Def(id)
		for i, flavor := range flavors[id] {
			pool = append(pool, domain.Quest{
				ID:     fmt.Sprintf("dq_%s_any_%d", id, i+1),
				Name:   flavor,
				Desc:   fmt.Sprintf("Log any %s action today", def.Name),
				Type:   domain.QuestTypeSkillAction,
				Skill:  id,
				Target: 1,
				XP:     skillActionXP[id],
			})
		}
	}

	// Sanity: spec-fixed pool size, enforced at startup
	if len(pool) != 81 {
		panic(fmt.Sprintf("daily quest pool has %d quests, want 81", len(pool)))
	}
	return pool
}

func buildWeeklyPool() []domain.Quest {
	var pool []domain.Quest

	for _, target := range []int{10, 15, 20, 25, 30, 40, 50, 75} {
		pool = append(pool, domain.Quest{
			ID:     fmt.Sprintf("wq_actions_%d", target),
			Name:   fmt.Sprintf("Weekly Grind x%d", target),
			Desc:   fmt.Sprintf("Log %d actions this week", target),
			Type:   domain.QuestTypeActions,
			Target: target,
			XP:     25 * target,
		})
	}

	for _, target := range []int{4, 5, 6, 7} {
		pool = append(pool, domain.Quest{
			ID:     fmt.Sprintf("wq_unique_%d", target),
			Name:   fmt.Sprintf("Renaissance Week %d", target),
			Desc:   fmt.Sprintf("Log actions in %d different skills this week", target),
			Type:   domain.QuestTypeUniqueSkills,
			Target: target,
			XP:     120 * target,
		})
	}

	for _, id := range domain.TrackedSkillIDs {
		def := skill.Def(id)
		for _, target := range []int{5, 10} {
			pool = append(pool, domain.Quest{
				ID:     fmt.Sprintf("wq_%s_count_%d", id, target),
				Name:   fmt.Sprintf("%s Week x%d", def.Name, target),
				Desc:   fmt.Sprintf("Log %d %s actions this week", target, def.Name),
				Type:   domain.QuestTypeSkillCount,
				Skill:  id,
				Target: target,
				XP:     35 * target,
			})
		}
	}

	pool = append(pool,
		domain.Quest{
			ID:     "wq_actions_100",
			Name:   "Centurion Week",
			Desc:   "Log 100 actions this week",
			Type:   domain.QuestTypeActions,
			Target: 100,
			XP:     3000,
		},
		domain.Quest{
			ID:     "wq_unique_3",
			Name:   "Triple Threat",
			Desc:   "Log actions in 3 different skills this week",
			Type:   domain.QuestTypeUniqueSkills,
			Target: 3,
			XP:     300,
		},
		domain.Quest{
			ID:     "wq_full_house",
			Name:   "Full House",
			Desc:   "Log actions in all 7 skills this week",
			Type:   domain.QuestTypeUniqueSkills,
			Target: 7,
			XP:     1000,
		},
	)

	if len(pool) != 29 {
		panic(fmt.Sprintf("weekly quest pool has %d quests, want 29", len(pool)))
	}
	return pool
}

// ByID resolves a quest id against both pools
func ByID(id string) *domain.Quest {
	for i := range DailyPool {
		if DailyPool[i].ID == id {
			return &DailyPool[i]
		}
	}
	for i := range WeeklyPool {
		if WeeklyPool[i].ID == id {
			return &WeeklyPool[i]
		}
	}
	return nil
}
