package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascend-app/ascend/internal/domain"
)

func TestPoolSizes(t *testing.T) {
	assert.Len(t, DailyPool, 81)
	assert.Len(t, WeeklyPool, 29)
}

func TestPoolIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range append(append([]domain.Quest{}, DailyPool...), WeeklyPool...) {
		assert.False(t, seen[q.ID], "duplicate quest id %s", q.ID)
		seen[q.ID] = true
	}
}

func TestPoolSkillFieldsSet(t *testing.T) {
	for _, q := range DailyPool {
		switch q.Type {
		case domain.QuestTypeSkillCount, domain.QuestTypeSkillAction:
			assert.NotEmpty(t, q.Skill, "quest %s needs a skill", q.ID)
		default:
			assert.Empty(t, q.Skill, "quest %s must not carry a skill", q.ID)
		}
		assert.Positive(t, q.Target, "quest %s", q.ID)
		assert.Positive(t, q.XP, "quest %s", q.ID)
	}
}

func TestDailyQuests_Deterministic(t *testing.T) {
	a := DailyQuests("2024-02-07")
	b := DailyQuests("2024-02-07")

	require.Len(t, a, DailyCount)
	assert.Equal(t, a, b, "same date must yield the identical quest list")
}

func TestDailyQuests_VariesByDate(t *testing.T) {
	a := DailyQuests("2024-02-07")
	b := DailyQuests("2024-02-08")

	ids := func(qs []domain.Quest) []string {
		out := make([]string, len(qs))
		for i, q := range qs {
			out[i] = q.ID
		}
		return out
	}
	assert.NotEqual(t, ids(a), ids(b), "adjacent days should select different sets")
}

func TestWeeklyQuests_Deterministic(t *testing.T) {
	a := WeeklyQuests("2024-02-04")
	b := WeeklyQuests("2024-02-04")

	require.Len(t, a, WeeklyCount)
	assert.Equal(t, a, b)
}

func TestSeedFor_StableAndNonNegative(t *testing.T) {
	assert.Equal(t, seedFor("daily_2024-02-07"), seedFor("daily_2024-02-07"))
	assert.NotEqual(t, seedFor("daily_2024-02-07"), seedFor("weekly_2024-02-07"))
	for _, key := range []string{"", "a", "daily_1999-12-31", "weekly_2024-02-04"} {
		assert.GreaterOrEqual(t, seedFor(key), int64(0))
	}
}

func entriesFor(skills ...domain.SkillID) []domain.ActionLogEntry {
	out := make([]domain.ActionLogEntry, len(skills))
	for i, s := range skills {
		out[i] = domain.ActionLogEntry{SkillID: s}
	}
	return out
}

func TestProgress_Actions(t *testing.T) {
	q := domain.Quest{Type: domain.QuestTypeActions, Target: 3}

	assert.Equal(t, 0, Progress(q, nil))
	assert.Equal(t, 2, Progress(q, entriesFor(domain.SkillMind, domain.SkillMind)))
	assert.False(t, IsComplete(q, entriesFor(domain.SkillMind, domain.SkillMind)))
	assert.True(t, IsComplete(q, entriesFor(domain.SkillMind, domain.SkillMind, domain.SkillSocial)))
}

func TestProgress_UniqueSkills(t *testing.T) {
	q := domain.Quest{Type: domain.QuestTypeUniqueSkills, Target: 2}

	entries := entriesFor(domain.SkillMind, domain.SkillMind, domain.SkillMind)
	assert.Equal(t, 1, Progress(q, entries))

	entries = entriesFor(domain.SkillMind, domain.SkillSocial, domain.SkillMind)
	assert.Equal(t, 2, Progress(q, entries))
	assert.True(t, IsComplete(q, entries))
}

func TestProgress_SkillCount(t *testing.T) {
	q := domain.Quest{Type: domain.QuestTypeSkillCount, Skill: domain.SkillStrength, Target: 2}

	entries := entriesFor(domain.SkillStrength, domain.SkillMind, domain.SkillStrength)
	assert.Equal(t, 2, Progress(q, entries))
	assert.True(t, IsComplete(q, entries))
}

func TestProgress_SkillAction(t *testing.T) {
	q := domain.Quest{Type: domain.QuestTypeSkillAction, Skill: domain.SkillSocial, Target: 1}

	assert.Equal(t, 0, Progress(q, entriesFor(domain.SkillMind)))
	assert.Equal(t, 1, Progress(q, entriesFor(domain.SkillMind, domain.SkillSocial, domain.SkillSocial)),
		"skill_action saturates at 1")
}

func TestByID(t *testing.T) {
	q := ByID(DailyPool[0].ID)
	assert.NotNil(t, q)
	assert.Equal(t, DailyPool[0].ID, q.ID)

	assert.NotNil(t, ByID(WeeklyPool[0].ID))
	assert.Nil(t, ByID("nope"))
}
