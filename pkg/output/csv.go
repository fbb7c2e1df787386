package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sustfish/bycatch-tradeoffs/internal/simulation"
	"github.com/sustfish/bycatch-tradeoffs/pkg/summary"
)

// ResultsColumns is the stable column contract of the results table.
var ResultsColumns = []string{"species", "draw", "resample", "policy", "reduction", "proportion", "cost"}

// RegionsColumns is the stable column contract of the region totals table.
var RegionsColumns = []string{"region", "stocks", "total_cost", "total_reduction_mey", "total_reduction_msy"}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// WriteResultsCSV persists the results table.
func WriteResultsCSV(path string, rows []simulation.ResultRow) error {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{
			row.Species,
			strconv.Itoa(row.Draw),
			strconv.Itoa(row.Resample),
			string(row.Policy),
			formatValue(row.Reduction),
			formatValue(row.Proportion),
			formatValue(row.Cost),
		}
	}
	return writeCSV(path, ResultsColumns, records)
}

// SummaryColumns returns the summary table header for the requested
// quantiles.
func SummaryColumns(quantiles []float64) []string {
	header := []string{"species", "policy", "count", "mean_reduction", "mean_cost"}
	for _, q := range quantiles {
		header = append(header, quantileColumn(q, "reduction"))
	}
	for _, q := range quantiles {
		header = append(header, quantileColumn(q, "cost"))
	}
	return header
}

// WriteSummaryCSV persists the summary table.
func WriteSummaryCSV(path string, table summary.Table) error {
	records := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		record := []string{
			row.Species,
			string(row.Policy),
			strconv.Itoa(row.Count),
			formatValue(row.MeanReduction),
			formatValue(row.MeanCost),
		}
		for _, q := range row.ReductionQ {
			record = append(record, formatValue(q))
		}
		for _, q := range row.CostQ {
			record = append(record, formatValue(q))
		}
		records[i] = record
	}
	return writeCSV(path, SummaryColumns(table.Quantiles), records)
}

// WriteRegionsCSV persists the region totals table.
func WriteRegionsCSV(path string, rows []summary.RegionRow) error {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{
			row.Region,
			strconv.Itoa(row.Stocks),
			formatValue(row.TotalCost),
			formatValue(row.TotalReductionMEY),
			formatValue(row.TotalReductionMSY),
		}
	}
	return writeCSV(path, RegionsColumns, records)
}
