// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/sustfish/bycatch-tradeoffs/pkg/datasets"
	"github.com/sustfish/bycatch-tradeoffs/pkg/summary"
)

// FindSummaryRow finds the summary row for a species and policy.
// Returns a pointer to the row if found, nil otherwise.
func FindSummaryRow(table summary.Table, species string, policy datasets.Policy) *summary.Row {
	for i := range table.Rows {
		if table.Rows[i].Species == species && table.Rows[i].Policy == policy {
			return &table.Rows[i]
		}
	}
	return nil
}

// ApproxEqual reports whether two values are within tolerance of each other.
func ApproxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// UniformPool builds a synthetic stock pool with evenly spaced reduction
// requirements from lo to hi (inclusive) and unit weights; costs rise
// linearly from 10 in steps of 10.
func UniformPool(n int, lo, hi float64) []datasets.StockRecord {
	pool := make([]datasets.StockRecord, n)
	for i := range pool {
		frac := lo
		if n > 1 {
			frac = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		pool[i] = datasets.StockRecord{
			ID:           string(rune('a' + i)),
			ReductionMEY: frac,
			ReductionMSY: frac,
			MarginalCost: float64(10 * (i + 1)),
			Weight:       1,
		}
	}
	return pool
}
