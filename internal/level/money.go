package level

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ascend-app/ascend/internal/domain"
)

// The money track levels on absolute net worth, not the XP table.
var moneyLevels = []domain.MoneyLevel{
	{Threshold: 0, Title: "Broke", Level: 1},
	{Threshold: 1_000, Title: "Penny Pincher", Level: 2},
	{Threshold: 5_000, Title: "Saver", Level: 3},
	{Threshold: 10_000, Title: "Budgeter", Level: 4},
	{Threshold: 25_000, Title: "Nest Egg", Level: 5},
	{Threshold: 50_000, Title: "Accumulator", Level: 6},
	{Threshold: 100_000, Title: "Six Figure Club", Level: 7},
	{Threshold: 250_000, Title: "Quarter Million", Level: 8},
	{Threshold: 500_000, Title: "Half Millionaire", Level: 9},
	{Threshold: 1_000_000, Title: "Millionaire", Level: 10},
	{Threshold: 2_500_000, Title: "Multi-Millionaire", Level: 11},
	{Threshold: 5_000_000, Title: "High Net Worth", Level: 12},
	{Threshold: 10_000_000, Title: "Decamillionaire", Level: 13},
	{Threshold: 25_000_000, Title: "Tycoon", Level: 14},
	{Threshold: 50_000_000, Title: "Magnate", Level: 15},
	{Threshold: 100_000_000, Title: "Mogul", Level: 16},
	{Threshold: 250_000_000, Title: "Empire Builder", Level: 17},
	{Threshold: 500_000_000, Title: "Half Billionaire", Level: 18},
	{Threshold: 1_000_000_000, Title: "Billionaire", Level: 19},
}

var moneyPrinter = message.NewPrinter(language.English)

// MoneyLevel returns the level for an absolute net worth
func MoneyLevel(netWorth float64) int {
	return moneyRung(netWorth).Level
}

// MoneyTitle returns the title for an absolute net worth
func MoneyTitle(netWorth float64) string {
	return moneyRung(netWorth).Title
}

// MoneyProgress linearly interpolates between the current and next net-worth
// threshold, returning 1 at the top rung.
func MoneyProgress(netWorth float64) float64 {
	for i := len(moneyLevels) - 1; i >= 0; i-- {
		if netWorth >= moneyLevels[i].Threshold {
			if i == len(moneyLevels)-1 {
				return 1
			}
			floor := moneyLevels[i].Threshold
			ceil := moneyLevels[i+1].Threshold
			return (netWorth - floor) / (ceil - floor)
		}
	}
	return 0
}

// FormatMoney renders a net worth as a grouped dollar amount, e.g. $1,250,000
func FormatMoney(netWorth float64) string {
	return moneyPrinter.Sprintf("$%d", int64(netWorth))
}

func moneyRung(netWorth float64) domain.MoneyLevel {
	rung := moneyLevels[0]
	for _, ml := range moneyLevels {
		if netWorth >= ml.Threshold {
			rung = ml
		}
	}
	return rung
}
