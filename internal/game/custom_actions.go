package game

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/skill"
)

// AddCustomAction creates a user-authored action on a skill. Requested XP
// above the cap is clamped, not rejected.
func AddCustomAction(state *domain.GameState, skillID domain.SkillID, name string, xp int) (domain.SkillAction, error) {
	if skill.Def(skillID) == nil {
		return domain.SkillAction{}, domain.ErrSkillNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.SkillAction{}, domain.ErrInvalidInput
	}

	action := domain.SkillAction{
		ID:     "custom_" + uuid.NewString(),
		Name:   name,
		XP:     skill.ClampCustomXP(xp),
		Custom: true,
	}
	if state.CustomActions == nil {
		state.CustomActions = map[domain.SkillID][]domain.SkillAction{}
	}
	state.CustomActions[skillID] = append(state.CustomActions[skillID], action)
	return action, nil
}

// RemoveCustomAction deletes a custom action by id; unknown ids are a no-op
func RemoveCustomAction(state *domain.GameState, skillID domain.SkillID, actionID string) {
	actions := state.CustomActions[skillID]
	kept := actions[:0]
	for _, a := range actions {
		if a.ID != actionID {
			kept = append(kept, a)
		}
	}
	state.CustomActions[skillID] = kept
}
