package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ascend-app/ascend/internal/domain"
)

func TestDef(t *testing.T) {
	def := Def(domain.SkillStrength)
	assert.NotNil(t, def)
	assert.Equal(t, "Strength", def.Name)

	assert.Nil(t, Def("bogus"))
}

func TestAction(t *testing.T) {
	a := Action(domain.SkillStrength, "gym")
	assert.NotNil(t, a)
	assert.Equal(t, 75, a.XP)

	assert.Nil(t, Action(domain.SkillStrength, "nope"))
	assert.Nil(t, Action("bogus", "gym"))
}

func TestDefaultStates(t *testing.T) {
	states := DefaultStates()
	assert.Len(t, states, 7)
	for _, s := range states {
		assert.Zero(t, s.XP)
	}
	// Money is in the catalog for display but never an XP skill
	for _, s := range states {
		assert.NotEqual(t, domain.SkillMoney, s.ID)
	}
}

func TestMoneyHasNoActions(t *testing.T) {
	def := Def(domain.SkillMoney)
	assert.NotNil(t, def)
	assert.Empty(t, def.Actions)
}

func TestClampCustomXP(t *testing.T) {
	assert.Equal(t, 50, ClampCustomXP(120))
	assert.Equal(t, 50, ClampCustomXP(50))
	assert.Equal(t, 35, ClampCustomXP(35))
	assert.Equal(t, 0, ClampCustomXP(-10))
}

func TestActions_MergesCustom(t *testing.T) {
	custom := map[domain.SkillID][]domain.SkillAction{
		domain.SkillMind: {{ID: "journal", Name: "Journaling", XP: 25, Custom: true}},
	}

	merged := Actions(domain.SkillMind, custom)
	assert.Len(t, merged, len(Def(domain.SkillMind).Actions)+1)
	assert.Equal(t, "journal", merged[len(merged)-1].ID)

	// Custom actions for other skills don't leak in
	merged = Actions(domain.SkillSocial, custom)
	assert.Len(t, merged, len(Def(domain.SkillSocial).Actions))
}

func TestFindAction(t *testing.T) {
	custom := map[domain.SkillID][]domain.SkillAction{
		domain.SkillMind: {{ID: "journal", Name: "Journaling", XP: 25, Custom: true}},
	}

	a := FindAction(domain.SkillMind, "journal", custom)
	assert.NotNil(t, a)
	assert.True(t, a.Custom)

	a = FindAction(domain.SkillMind, "meditation", custom)
	assert.NotNil(t, a)
	assert.False(t, a.Custom)

	assert.Nil(t, FindAction(domain.SkillMind, "missing", custom))
}
