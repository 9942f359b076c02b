package skill

import "github.com/ascend-app/ascend/internal/domain"

// MaxCustomActionXP caps user-authored actions; higher requests are clamped
// at creation rather than rejected.
const MaxCustomActionXP = 50

// ClampCustomXP applies the custom-action XP cap
func ClampCustomXP(xp int) int {
	if xp > MaxCustomActionXP {
		return MaxCustomActionXP
	}
	if xp < 0 {
		return 0
	}
	return xp
}

// Actions returns the action menu for a skill: the fixed catalog actions
// unioned with the user's custom actions for that skill.
func Actions(skillID domain.SkillID, custom map[domain.SkillID][]domain.SkillAction) []domain.SkillAction {
	def := Def(skillID)
	if def == nil {
		return nil
	}
	merged := make([]domain.SkillAction, 0, len(def.Actions)+len(custom[skillID]))
	merged = append(merged, def.Actions...)
	merged = append(merged, custom[skillID]...)
	return merged
}

// FindAction resolves an action id against the merged menu for a skill
func FindAction(skillID domain.SkillID, actionID string, custom map[domain.SkillID][]domain.SkillAction) *domain.SkillAction {
	if a := Action(skillID, actionID); a != nil {
		return a
	}
	for _, ca := range custom[skillID] {
		if ca.ID == actionID {
			c := ca
			return &c
		}
	}
	return nil
}
