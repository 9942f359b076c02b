package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascend-app/ascend/internal/domain"
)

func TestSnapshotRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	s := NewState(now)
	LogAction(s, domain.SkillStrength, "gym", "Gym Session", 75, now)
	LogAction(s, domain.SkillMind, "meditation", "Meditation 15min", 50, now)
	s.HardcoreMode = true
	s.Penalty = domain.PenaltyState{Tier: domain.TierWarning, ConsecutiveMisses: 1, LastCheckDate: "2024-06-02"}
	s.MoneyLog.Entries = append(s.MoneyLog.Entries, domain.MoneyEntry{ID: "m1", NetWorth: 5000, DateStr: "2024-06-01"})
	s.MoneyLog.CurrentNetWorth = 5000

	data, err := ExportSnapshot(s)
	require.NoError(t, err)

	restored, err := ImportSnapshot(data)
	require.NoError(t, err)

	assert.Equal(t, s.Skills, restored.Skills)
	assert.Equal(t, s.Log, restored.Log)
	assert.Equal(t, s.UnlockedAchievements, restored.UnlockedAchievements)
	assert.Equal(t, s.UnlockedBadges, restored.UnlockedBadges)
	assert.Equal(t, s.Streaks, restored.Streaks)
	assert.Equal(t, s.Penalty, restored.Penalty)
	assert.Equal(t, s.MoneyLog, restored.MoneyLog)
	assert.Equal(t, s.CreatedAt, restored.CreatedAt)
}

func TestImportSnapshot_RejectsMissingKeys(t *testing.T) {
	_, err := ImportSnapshot([]byte(`{"skills": [], "log": []}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
	assert.Contains(t, err.Error(), "unlockedAchievements")
}

func TestImportSnapshot_RejectsMalformedJSON(t *testing.T) {
	_, err := ImportSnapshot([]byte(`{"skills": `))
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
}

func TestImportSnapshot_NormalizesOmittedCollections(t *testing.T) {
	restored, err := ImportSnapshot([]byte(`{"skills": [], "log": [], "unlockedAchievements": []}`))
	require.NoError(t, err)

	assert.NotNil(t, restored.UnlockedBadges)
	assert.NotNil(t, restored.CustomActions)
	assert.NotNil(t, restored.Streaks.PerSkill)
}
