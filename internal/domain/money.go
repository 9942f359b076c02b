package domain

// MoneyEntry is one net-worth snapshot. NetWorth is the absolute amount the
// user reported at that moment, not a delta.
type MoneyEntry struct {
	ID        string  `json:"id"`
	Timestamp int64   `json:"timestamp"` // unix millis
	DateStr   string  `json:"dateStr"`   // YYYY-MM-DD
	NetWorth  float64 `json:"netWorth"`
	Note      string  `json:"note,omitempty"`
}

// MoneyLog is the append-only net-worth history plus the current value
type MoneyLog struct {
	Entries         []MoneyEntry `json:"entries"`
	CurrentNetWorth float64      `json:"currentNetWorth"`
}

// MoneyLevel is one rung of the net-worth level ladder
type MoneyLevel struct {
	Threshold float64 `json:"threshold"`
	Title     string  `json:"title"`
	Level     int     `json:"level"`
}

// LogMoneyResult is the outcome of recording a net-worth snapshot
type LogMoneyResult struct {
	Entry         MoneyEntry `json:"entry"`
	LeveledUp     bool       `json:"leveledUp"`
	PreviousLevel int        `json:"previousLevel"`
	NewLevel      int        `json:"newLevel"`
}
