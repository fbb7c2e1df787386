// Package summary reduces the raw results table into per-species
// distributional summaries and regional aggregates for downstream reporting.
package summary

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sustfish/bycatch-tradeoffs/internal/simulation"
	"github.com/sustfish/bycatch-tradeoffs/pkg/constants"
	"github.com/sustfish/bycatch-tradeoffs/pkg/datasets"
	"github.com/sustfish/bycatch-tradeoffs/pkg/mathutil"
)

// Row is the aggregate for one (species, policy) group. Quantile slices are
// aligned with Table.Quantiles. Count is the number of result rows in the
// group; statistics are computed over the defined values only and are NaN
// when a group has none.
type Row struct {
	Species       string
	Policy        datasets.Policy
	Count         int
	MeanReduction float64
	MeanCost      float64
	ReductionQ    []float64
	CostQ         []float64
}

// Table is the summary of one results table.
type Table struct {
	Quantiles []float64
	Rows      []Row
}

type groupKey struct {
	species string
	policy  datasets.Policy
}

// Summarize groups rows by (species, policy) and computes the mean and the
// requested quantiles of the reduction and cost columns. Undefined values are
// excluded from every statistic, never treated as zero. The result does not
// depend on the order of rows within a group; output rows are sorted by
// species then policy.
func Summarize(rows []simulation.ResultRow, quantiles []float64) Table {
	if len(quantiles) == 0 {
		quantiles = constants.DefaultQuantiles
	}

	groups := make(map[groupKey]*Row)
	reductions := make(map[groupKey][]float64)
	costs := make(map[groupKey][]float64)
	for _, row := range rows {
		key := groupKey{species: row.Species, policy: row.Policy}
		group, ok := groups[key]
		if !ok {
			group = &Row{Species: row.Species, Policy: row.Policy}
			groups[key] = group
		}
		group.Count++
		if mathutil.Defined(row.Reduction) {
			reductions[key] = append(reductions[key], row.Reduction)
		}
		if mathutil.Defined(row.Cost) {
			costs[key] = append(costs[key], row.Cost)
		}
	}

	table := Table{Quantiles: quantiles, Rows: make([]Row, 0, len(groups))}
	for key, group := range groups {
		group.MeanReduction, group.ReductionQ = describe(reductions[key], quantiles)
		group.MeanCost, group.CostQ = describe(costs[key], quantiles)
		table.Rows = append(table.Rows, *group)
	}
	sort.Slice(table.Rows, func(i, j int) bool {
		if table.Rows[i].Species != table.Rows[j].Species {
			return table.Rows[i].Species < table.Rows[j].Species
		}
		return table.Rows[i].Policy < table.Rows[j].Policy
	})
	return table
}

// describe computes the mean and empirical quantiles of vals. NaN statistics
// signal an empty group.
func describe(vals, quantiles []float64) (float64, []float64) {
	qs := make([]float64, len(quantiles))
	if len(vals) == 0 {
		for i := range qs {
			qs[i] = mathutil.Undefined()
		}
		return mathutil.Undefined(), qs
	}

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	for i, q := range quantiles {
		qs[i] = stat.Quantile(q, stat.Empirical, sorted, nil)
	}
	return stat.Mean(sorted, nil), qs
}
