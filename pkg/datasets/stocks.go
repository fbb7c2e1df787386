package datasets

import (
	"fmt"
	"strings"

	"github.com/sustfish/bycatch-tradeoffs/pkg/constants"
	"github.com/sustfish/bycatch-tradeoffs/pkg/mathutil"
)

// StockRecord is one target fishery/stock row. The percentage-reduction
// columns are stored as fractions in [0, 1]; a stock already at or below its
// target requires no reduction, so negative input percentages clamp to 0.
// The pool of records is shared read-only across all draws and species.
type StockRecord struct {
	ID           string
	Regions      []string
	Category     string
	CategoryName string
	MarginalCost float64
	Beta         float64
	Growth       float64
	MEYRatio     float64
	MSYRatio     float64
	ReductionMEY float64
	ReductionMSY float64
	Weight       float64
}

// RequiredReduction returns the fractional effort reduction this stock needs
// to reach the given policy target, or NaN when the ratio is unknown.
func (r StockRecord) RequiredReduction(policy Policy) float64 {
	if policy == PolicyMSY {
		return r.ReductionMSY
	}
	return r.ReductionMEY
}

// stockColumns are the columns every stock table must carry.
var stockColumns = []string{
	"idoriglumped", "regionfao", "speciescat", "speciescatname",
	"marginalcost", "beta", "g", "eqfvfmey", "fvfmsy", "pctredfmey", "pctredfmsy",
}

// LoadStocks reads the target stock table at path. Multi-valued regionfao
// cells are split into one region code per value.
func LoadStocks(path string) ([]StockRecord, error) {
	t, err := readTable(path, stockColumns)
	if err != nil {
		return nil, err
	}

	stocks := make([]StockRecord, 0, len(t.rows))
	for n, row := range t.rows {
		rec := StockRecord{
			ID:           t.field(row, "idoriglumped"),
			Regions:      SplitRegions(t.field(row, "regionfao")),
			Category:     t.field(row, "speciescat"),
			CategoryName: t.field(row, "speciescatname"),
		}
		if rec.ID == "" {
			return nil, fmt.Errorf("%s: row %d has an empty stock identifier", path, n+2)
		}

		if rec.MarginalCost, err = t.numeric(row, "marginalcost"); err != nil {
			return nil, err
		}
		if rec.Beta, err = t.numeric(row, "beta"); err != nil {
			return nil, err
		}
		if rec.Growth, err = t.numeric(row, "g"); err != nil {
			return nil, err
		}
		if rec.MEYRatio, err = t.numeric(row, "eqfvfmey"); err != nil {
			return nil, err
		}
		if rec.MSYRatio, err = t.numeric(row, "fvfmsy"); err != nil {
			return nil, err
		}

		mey, err := t.numeric(row, "pctredfmey")
		if err != nil {
			return nil, err
		}
		msy, err := t.numeric(row, "pctredfmsy")
		if err != nil {
			return nil, err
		}
		rec.ReductionMEY = mathutil.Clamp(mey/constants.PercentageMultiplier, 0, 1)
		rec.ReductionMSY = mathutil.Clamp(msy/constants.PercentageMultiplier, 0, 1)

		if rec.Weight, err = t.numeric(row, "weight"); err != nil {
			return nil, err
		}
		if !mathutil.Defined(rec.Weight) {
			rec.Weight = constants.DefaultStockWeight
		}

		stocks = append(stocks, rec)
	}

	return stocks, nil
}

// SplitRegions splits a string-encoded multi-region field into one FAO region
// code per value. Codes may be separated by spaces, commas, or semicolons.
func SplitRegions(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';' || r == '\t'
	})
	regions := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			regions = append(regions, f)
		}
	}
	return regions
}
