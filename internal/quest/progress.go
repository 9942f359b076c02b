package quest

import "github.com/ascend-app/ascend/internal/domain"

// Progress measures a quest against a window slice of the action log
// (today's entries for daily quests, this week's for weekly).
func Progress(q domain.Quest, entries []domain.ActionLogEntry) int {
	switch q.Type {
	case domain.QuestTypeActions:
		return len(entries)

	case domain.QuestTypeUniqueSkills:
		seen := make(map[domain.SkillID]struct{})
		for _, e := range entries {
			seen[e.SkillID] = struct{}{}
		}
		return len(seen)

	case domain.QuestTypeSkillCount:
		count := 0
		for _, e := range entries {
			if e.SkillID == q.Skill {
				count++
			}
		}
		return count

	case domain.QuestTypeSkillAction:
		for _, e := range entries {
			if e.SkillID == q.Skill {
				return 1
			}
		}
		return 0
	}
	return 0
}

// IsComplete reports whether the slice satisfies the quest target
func IsComplete(q domain.Quest, entries []domain.ActionLogEntry) bool {
	return Progress(q, entries) >= q.Target
}
