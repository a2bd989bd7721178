// Package analytics computes the aggregates shown on the dashboard, finance and
// report screens. Functions are pure: callers pass in the records and the clock.
package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// OccupancyRate is occupied/capacity as a whole percentage, halves rounded away from zero.
// A capacity of zero or less yields 0.
func OccupancyRate(occupied, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(capacity) * 100))
}

// Percentage is part/total as a whole percentage; a zero total yields 0.
func Percentage(part, total float64) int {
	if total == 0 {
		return 0
	}
	pct := decimal.NewFromFloat(part).Div(decimal.NewFromFloat(total)).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// Sum adds amount(item) over items with exact decimal arithmetic.
func Sum[T any](items []T, amount func(*T) float64) float64 {
	total := decimal.Zero
	for i := range items {
		total = total.Add(decimal.NewFromFloat(amount(&items[i])))
	}
	return total.InexactFloat64()
}

// SumIf is Sum restricted to the items accepted by keep.
func SumIf[T any](items []T, keep func(*T) bool, amount func(*T) float64) float64 {
	total := decimal.Zero
	for i := range items {
		if keep(&items[i]) {
			total = total.Add(decimal.NewFromFloat(amount(&items[i])))
		}
	}
	return total.InexactFloat64()
}

// Sub returns a-b without float drift.
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}
