package level

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ascend-app/ascend/internal/domain"
)

func TestTitle_Thresholds(t *testing.T) {
	assert.Equal(t, "Unawakened", Title(0, false, domain.TierNone))
	assert.Equal(t, "Unawakened", Title(6, false, domain.TierNone))
	assert.Equal(t, "Initiate", Title(7, false, domain.TierNone))
	assert.Equal(t, "Champion", Title(120, false, domain.TierNone))
	assert.Equal(t, "The One", Title(693, false, domain.TierNone))
}

func TestTitle_PenaltyOverrides(t *testing.T) {
	// Overrides apply regardless of level, but only under hardcore mode
	assert.Equal(t, TitleCondemned, Title(693, true, domain.TierCritical))
	assert.Equal(t, TitlePunished, Title(693, true, domain.TierPenaltyZone))
	assert.Equal(t, "The One", Title(693, false, domain.TierCritical))
	assert.Equal(t, "The One", Title(693, true, domain.TierWarning))
}

func TestSkillTitle(t *testing.T) {
	assert.Equal(t, "Weakling", SkillTitle(domain.SkillStrength, 1))
	assert.Equal(t, "Warrior", SkillTitle(domain.SkillStrength, 12))
	assert.Equal(t, "Strength Incarnate", SkillTitle(domain.SkillStrength, 99))
	assert.Equal(t, "Zen Master", SkillTitle(domain.SkillMind, 50))
	assert.Equal(t, "Unknown", SkillTitle("bogus", 10))
}

func TestMoneyLevels(t *testing.T) {
	assert.Equal(t, 1, MoneyLevel(0))
	assert.Equal(t, "Broke", MoneyTitle(500))
	assert.Equal(t, 7, MoneyLevel(100_000))
	assert.Equal(t, "Millionaire", MoneyTitle(1_500_000))
	assert.Equal(t, 19, MoneyLevel(2_000_000_000))
}

func TestMoneyProgress(t *testing.T) {
	assert.InDelta(t, 0.5, MoneyProgress(500), 1e-9)
	assert.InDelta(t, 0.0, MoneyProgress(1_000), 1e-9)
	assert.InDelta(t, 1.0, MoneyProgress(5_000_000_000), 1e-9)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,250,000", FormatMoney(1_250_000))
	assert.Equal(t, "$0", FormatMoney(0))
}
