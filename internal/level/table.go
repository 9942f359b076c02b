package level

import (
	"math"

	"github.com/ascend-app/ascend/internal/domain"
)

// MaxLevel is the skill level cap
const MaxLevel = 99

const (
	baseXP     = 85
	growthRate = 1.3
)

// xpTable[i] is the cumulative XP needed to leave level i+1, i.e. a skill is
// level i+1 while its XP is below xpTable[i]. Built once at process start.
var xpTable = buildXPTable()

func buildXPTable() [MaxLevel]int {
	var table [MaxLevel]int
	cumulative := 0
	for i := 0; i < MaxLevel; i++ {
		cumulative += int(math.Floor(baseXP * math.Pow(growthRate, float64(i))))
		table[i] = cumulative
	}
	return table
}

// Level returns the level in [1, MaxLevel] for the given cumulative XP
func Level(xp int) int {
	for i := 0; i < MaxLevel; i++ {
		if xp < xpTable[i] {
			return i + 1
		}
	}
	return MaxLevel
}

// XPForLevel returns the cumulative XP at which the given level begins
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		return xpTable[MaxLevel-1]
	}
	return xpTable[level-2]
}

// XPToNext returns the XP still needed to reach the next level, 0 at cap
func XPToNext(xp int) int {
	lvl := Level(xp)
	if lvl >= MaxLevel {
		return 0
	}
	return xpTable[lvl-1] - xp
}

// Progress returns the fraction in [0,1] through the current level bracket
func Progress(xp int) float64 {
	lvl := Level(xp)
	if lvl >= MaxLevel {
		return 1
	}
	floor := 0
	if lvl > 1 {
		floor = xpTable[lvl-2]
	}
	ceil := xpTable[lvl-1]
	return float64(xp-floor) / float64(ceil-floor)
}

// TotalLevel sums Level over the supplied skills. Callers pass the seven
// XP-based skills; money has its own ladder and is excluded by convention.
func TotalLevel(skills []domain.SkillState) int {
	total := 0
	for _, s := range skills {
		total += Level(s.XP)
	}
	return total
}
