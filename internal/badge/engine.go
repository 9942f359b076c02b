package badge

import (
	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/level"
)

// Check returns the ids of badges newly earned given the current skill
// levels, in pool order. Already-unlocked badges are never returned.
func Check(skills []domain.SkillState, unlocked []string) []string {
	have := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		have[id] = true
	}

	levels := make(map[domain.SkillID]int, len(skills))
	for _, s := range skills {
		levels[s.ID] = level.Level(s.XP)
	}

	var earned []string
	for i := range Pool {
		b := &Pool[i]
		if have[b.ID] {
			continue
		}
		if met(b, levels) {
			earned = append(earned, b.ID)
		}
	}
	return earned
}

func met(b *domain.Badge, levels map[domain.SkillID]int) bool {
	if b.SkillID != "" {
		return levels[b.SkillID] >= b.RequiredLevel
	}
	// cross-skill badges need every tracked skill at the required level
	for _, id := range domain.TrackedSkillIDs {
		if levels[id] < b.RequiredLevel {
			return false
		}
	}
	return true
}
