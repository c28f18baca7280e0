package financials

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentROI returns the percentage return of exiting at exitPrice, rounded to 2 places.
// entryPrice must be > 0.
func PercentROI(entryPrice, exitPrice float64) float64 {
	entry := decimal.NewFromFloat(entryPrice)
	ratio := decimal.NewFromFloat(exitPrice).Sub(entry).Div(entry)
	return ratio.Mul(hundred).Round(2).InexactFloat64()
}

// DollarProfit returns the profit or loss in dollars of the whole position, rounded to cents
func DollarProfit(shareCount int, entryPrice, exitPrice float64) float64 {
	perShare := decimal.NewFromFloat(exitPrice).Sub(decimal.NewFromFloat(entryPrice))
	return perShare.Mul(decimal.NewFromInt(int64(shareCount))).Round(2).InexactFloat64()
}

// RoundCents rounds a price to currency-cent granularity (half away from zero)
func RoundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// CostBasis returns the total entry cost of the position
func CostBasis(shareCount int, entryPrice float64) float64 {
	return decimal.NewFromFloat(entryPrice).Mul(decimal.NewFromInt(int64(shareCount))).Round(2).InexactFloat64()
}
