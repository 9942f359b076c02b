// Package hardcore implements the daily decay job and the consecutive-miss
// penalty state machine for hardcore mode.
package hardcore

import (
	"math"
	"time"

	"github.com/ascend-app/ascend/internal/clock"
	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/level"
)

const (
	// DecayRateNormal and DecayRateHardcore are the fraction of a skill's
	// XP lost per inactive day. Hardcore mode decays harder.
	DecayRateNormal   = 0.30
	DecayRateHardcore = 0.50

	// LevelFloorFactor scales the level-proportional decay minimum
	LevelFloorFactor = 5

	// DailyMinActions is the action count needed to avoid a miss day
	DailyMinActions = 3
)

// RunDecay applies at most one daily decay pass to the state. It is
// idempotent per calendar day: a second call on the same date is a no-op.
// The very first run ever only stamps the date so a fresh profile is never
// penalized for the days before it existed.
func RunDecay(state *domain.GameState, now time.Time) domain.DecayResult {
	today := clock.DateKey(now)
	if state.LastDecayDate == today {
		return domain.DecayResult{}
	}
	if state.LastDecayDate == "" {
		state.LastDecayDate = today
		return domain.DecayResult{}
	}
	state.LastDecayDate = today

	yesterday := clock.YesterdayKey(now)
	perSkill, total := countActionsOn(state.Log, yesterday, now.Location())

	if state.HardcoreMode {
		updateMisses(&state.Penalty, total, today)
	}

	rate := DecayRateNormal
	if state.HardcoreMode {
		rate = DecayRateHardcore
	}

	var result domain.DecayResult
	for i := range state.Skills {
		sk := &state.Skills[i]
		if sk.XP <= 0 || perSkill[sk.ID] > 0 {
			continue
		}
		amount := decayAmount(sk.XP, rate)
		if amount > sk.XP {
			amount = sk.XP
		}
		sk.XP -= amount
		state.Penalty.XPDecayed += amount
		result.Decayed = true
		result.Losses = append(result.Losses, domain.DecayLoss{SkillID: sk.ID, Amount: amount})
	}
	return result
}

// decayAmount couples a level-proportional floor with a percentage cut
func decayAmount(xp int, rate float64) int {
	byRate := int(math.Floor(float64(xp) * rate))
	byLevel := level.Level(xp) * LevelFloorFactor
	if byLevel > byRate {
		return byLevel
	}
	return byRate
}

func updateMisses(p *domain.PenaltyState, yesterdayTotal int, today string) {
	if p.LastCheckDate == today {
		return
	}
	p.LastCheckDate = today

	if yesterdayTotal < DailyMinActions {
		p.ConsecutiveMisses++
	} else if p.ConsecutiveMisses > 0 {
		p.ConsecutiveMisses--
	}

	prev := p.Tier
	p.Tier = TierFor(p.ConsecutiveMisses)
	if p.Tier != prev && (p.Tier == domain.TierPenaltyZone || p.Tier == domain.TierCritical) {
		p.PenaltyQuestActive = true
	}
}

// TierFor maps a consecutive-miss count to its penalty tier
func TierFor(misses int) domain.PenaltyTier {
	switch {
	case misses >= 5:
		return domain.TierCritical
	case misses >= 2:
		return domain.TierPenaltyZone
	case misses >= 1:
		return domain.TierWarning
	default:
		return domain.TierNone
	}
}

func countActionsOn(log []domain.ActionLogEntry, date string, loc *time.Location) (map[domain.SkillID]int, int) {
	perSkill := make(map[domain.SkillID]int)
	total := 0
	for _, e := range log {
		if clock.DateKey(time.UnixMilli(e.Timestamp).In(loc)) != date {
			continue
		}
		perSkill[e.SkillID]++
		total++
	}
	return perSkill, total
}
