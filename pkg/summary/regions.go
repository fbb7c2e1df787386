package summary

import (
	"sort"

	"github.com/sustfish/bycatch-tradeoffs/pkg/datasets"
	"github.com/sustfish/bycatch-tradeoffs/pkg/mathutil"
)

// RegionRow aggregates the stock pool for one FAO region after fanning each
// stock out to every region it lists. A stock listed in k regions therefore
// contributes to k rows, so totals summed across regions intentionally exceed
// per-stock totals; this matches the reference aggregation. Whether summing
// (rather than area-weighting) is the right economic reading is flagged for
// domain-expert review.
type RegionRow struct {
	Region            string
	Stocks            int
	TotalCost         float64
	TotalReductionMEY float64
	TotalReductionMSY float64
}

// RegionTotals fans stocks out by FAO region and sums marginal cost and
// required reductions per region, excluding undefined values. Rows are sorted
// by region code.
func RegionTotals(stocks []datasets.StockRecord) []RegionRow {
	byRegion := make(map[string]*RegionRow)
	for _, rec := range stocks {
		for _, region := range rec.Regions {
			row, ok := byRegion[region]
			if !ok {
				row = &RegionRow{Region: region}
				byRegion[region] = row
			}
			row.Stocks++
			if mathutil.Defined(rec.MarginalCost) {
				row.TotalCost += rec.MarginalCost
			}
			if mathutil.Defined(rec.ReductionMEY) {
				row.TotalReductionMEY += rec.ReductionMEY
			}
			if mathutil.Defined(rec.ReductionMSY) {
				row.TotalReductionMSY += rec.ReductionMSY
			}
		}
	}

	rows := make([]RegionRow, 0, len(byRegion))
	for _, row := range byRegion {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Region < rows[j].Region })
	return rows
}
