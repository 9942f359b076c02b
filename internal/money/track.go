// Package money implements the net-worth progression track. It runs parallel
// to the XP skills: levels come from absolute net-worth thresholds, and
// entries never feed the action log, streaks, or quests.
package money

import (
	"time"

	"github.com/google/uuid"

	"github.com/ascend-app/ascend/internal/clock"
	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/level"
)

// LogNetWorth records an absolute net-worth snapshot. Each entry replaces the
// current value rather than accumulating onto it.
func LogNetWorth(log *domain.MoneyLog, netWorth float64, note string, now time.Time) domain.LogMoneyResult {
	prevLevel := level.MoneyLevel(log.CurrentNetWorth)

	entry := domain.MoneyEntry{
		ID:        uuid.NewString(),
		Timestamp: now.UnixMilli(),
		DateStr:   clock.DateKey(now),
		NetWorth:  netWorth,
		Note:      note,
	}
	log.Entries = append(log.Entries, entry)
	log.CurrentNetWorth = netWorth

	newLevel := level.MoneyLevel(netWorth)
	return domain.LogMoneyResult{
		Entry:         entry,
		LeveledUp:     newLevel > prevLevel,
		PreviousLevel: prevLevel,
		NewLevel:      newLevel,
	}
}
