package game

import (
	"encoding/json"
	"fmt"

	"github.com/ascend-app/ascend/internal/domain"
)

// snapshotKeys are required in an import payload. Presence is checked before
// decoding into the typed state so a malformed payload is rejected whole
// rather than partially applied.
var snapshotKeys = []string{"skills", "log", "unlockedAchievements"}

// ExportSnapshot serializes the full state as its canonical JSON form
func ExportSnapshot(state *domain.GameState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("exporting snapshot: %w", err)
	}
	return data, nil
}

// ImportSnapshot validates and decodes a snapshot previously produced by
// ExportSnapshot. Collections the payload omits come back as empty, never
// nil, so the returned state is safe to mutate immediately.
func ImportSnapshot(data []byte) (*domain.GameState, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	for _, key := range snapshotKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", domain.ErrInvalidSnapshot, key)
		}
	}

	var state domain.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	normalize(&state)
	return &state, nil
}

func normalize(state *domain.GameState) {
	if state.Log == nil {
		state.Log = []domain.ActionLogEntry{}
	}
	if state.UnlockedAchievements == nil {
		state.UnlockedAchievements = []string{}
	}
	if state.UnlockedBadges == nil {
		state.UnlockedBadges = []string{}
	}
	if state.CompletedAchievementRewards == nil {
		state.CompletedAchievementRewards = []string{}
	}
	if state.Streaks.PerSkill == nil {
		state.Streaks.PerSkill = make(map[domain.SkillID]domain.StreakData)
	}
	if state.CustomActions == nil {
		state.CustomActions = map[domain.SkillID][]domain.SkillAction{}
	}
}
