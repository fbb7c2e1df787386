// Package output persists and displays the results, summary, and region
// tables. Output filenames encode the uncertainty mode and elasticity
// exponent so downstream consumers can trace which run produced them.
package output

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sustfish/bycatch-tradeoffs/internal/simulation"
	"github.com/sustfish/bycatch-tradeoffs/pkg/constants"
	"github.com/sustfish/bycatch-tradeoffs/pkg/mathutil"
	"github.com/sustfish/bycatch-tradeoffs/pkg/summary"
)

// ModeLabel names the uncertainty mode for filenames and the run report.
func ModeLabel(uncertainty bool) string {
	if uncertainty {
		return constants.ModeMonteCarlo
	}
	return constants.ModePoint
}

// ResultsFileName encodes the run parameters into the results table filename.
func ResultsFileName(uncertainty bool, alpha float64) string {
	return fmt.Sprintf("results_%s_alpha%g.csv", ModeLabel(uncertainty), alpha)
}

// SummaryFileName encodes the run parameters into the summary table filename.
func SummaryFileName(uncertainty bool, alpha float64) string {
	return fmt.Sprintf("summary_%s_alpha%g.csv", ModeLabel(uncertainty), alpha)
}

// RegionsFileName encodes the run parameters into the region totals filename.
func RegionsFileName(uncertainty bool, alpha float64) string {
	return fmt.Sprintf("regions_%s_alpha%g.csv", ModeLabel(uncertainty), alpha)
}

// WorkbookFileName encodes the run parameters into the xlsx workbook filename.
func WorkbookFileName(uncertainty bool, alpha float64) string {
	return fmt.Sprintf("bycatch_%s_alpha%g.xlsx", ModeLabel(uncertainty), alpha)
}

// formatValue renders a float for output tables; undefined values serialize
// as the NA token, never as zero.
func formatValue(val float64) string {
	if !mathutil.Defined(val) {
		return constants.MissingToken
	}
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// quantileColumn names a quantile column, e.g. q10_reduction for the 10th
// percentile. These names are part of the stable output contract.
func quantileColumn(q float64, metric string) string {
	return fmt.Sprintf("q%d_%s", int(math.Round(q*100)), metric)
}

// PrettySummary outputs a human-readable rather than machine-readable table.
func PrettySummary(table summary.Table) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Summary by species and policy ---\n")
	header := "Species              | Policy | Rows   | Mean red. | Mean cost"
	for _, q := range table.Quantiles {
		header += fmt.Sprintf(" | %-9s", quantileColumn(q, "red"))
	}
	fmt.Println(header)
	for _, row := range table.Rows {
		line := p.Sprintf("%-20s | %-6s | %6d | %9s | %9s",
			row.Species, string(row.Policy), row.Count,
			formatValue(row.MeanReduction), formatValue(row.MeanCost))
		for _, q := range row.ReductionQ {
			line += p.Sprintf(" | %-9s", formatValue(q))
		}
		fmt.Println(line)
	}
}

// PrettyReport outputs the run report, including per-species excluded draw
// counts and any species that failed entirely.
func PrettyReport(report *simulation.RunReport) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Run report %s ---\n", report.RunID)
	p.Printf("mode=%s alpha=%g n1=%d n2=%d seed=%d\n",
		ModeLabel(report.Params.Uncertainty), report.Params.Alpha,
		report.Params.Draws, report.Params.Resamples, report.Seed)
	p.Printf("species completed: %d, elapsed: %s\n", report.Completed, report.Elapsed)
	for _, name := range report.SpeciesNames() {
		if excluded := report.Excluded[name]; excluded > 0 {
			p.Printf("  %s: %d of %d draws excluded\n", name, excluded, report.Params.Draws)
		}
	}
	for _, name := range report.FailedSpecies() {
		fmt.Printf("  FAILED %s: %s\n", name, report.Failures[name])
	}
}
