package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sustfish/bycatch-tradeoffs/internal/simulation"
	"github.com/sustfish/bycatch-tradeoffs/pkg/mathutil"
	"github.com/sustfish/bycatch-tradeoffs/pkg/summary"
)

// WriteWorkbook persists all run outputs into one xlsx workbook with a sheet
// per table plus the run report.
func WriteWorkbook(path string, rows []simulation.ResultRow, table summary.Table, regions []summary.RegionRow, report *simulation.RunReport) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", "Results"); err != nil {
		return fmt.Errorf("renaming results sheet: %w", err)
	}
	if err := writeResultsSheet(f, rows); err != nil {
		return err
	}
	if err := writeSummarySheet(f, table); err != nil {
		return err
	}
	if err := writeRegionsSheet(f, regions); err != nil {
		return err
	}
	if err := writeReportSheet(f, report); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// setCell writes a float value, using the NA token for undefined values so a
// spreadsheet never shows a spurious zero.
func setCell(f *excelize.File, sheet string, col, row int, val float64) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if !mathutil.Defined(val) {
		return f.SetCellValue(sheet, cell, formatValue(val))
	}
	return f.SetCellValue(sheet, cell, val)
}

func setCellString(f *excelize.File, sheet string, col, row int, val string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, val)
}

func setCellInt(f *excelize.File, sheet string, col, row int, val int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, val)
}

func writeHeader(f *excelize.File, sheet string, header []string) error {
	for i, name := range header {
		if err := setCellString(f, sheet, i+1, 1, name); err != nil {
			return err
		}
	}
	return nil
}

func writeResultsSheet(f *excelize.File, rows []simulation.ResultRow) error {
	if err := writeHeader(f, "Results", ResultsColumns); err != nil {
		return err
	}
	for i, row := range rows {
		r := i + 2
		if err := setCellString(f, "Results", 1, r, row.Species); err != nil {
			return err
		}
		if err := setCellInt(f, "Results", 2, r, row.Draw); err != nil {
			return err
		}
		if err := setCellInt(f, "Results", 3, r, row.Resample); err != nil {
			return err
		}
		if err := setCellString(f, "Results", 4, r, string(row.Policy)); err != nil {
			return err
		}
		for col, val := range []float64{row.Reduction, row.Proportion, row.Cost} {
			if err := setCell(f, "Results", col+5, r, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, table summary.Table) error {
	if _, err := f.NewSheet("Summary"); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	if err := writeHeader(f, "Summary", SummaryColumns(table.Quantiles)); err != nil {
		return err
	}
	for i, row := range table.Rows {
		r := i + 2
		if err := setCellString(f, "Summary", 1, r, row.Species); err != nil {
			return err
		}
		if err := setCellString(f, "Summary", 2, r, string(row.Policy)); err != nil {
			return err
		}
		if err := setCellInt(f, "Summary", 3, r, row.Count); err != nil {
			return err
		}
		vals := []float64{row.MeanReduction, row.MeanCost}
		vals = append(vals, row.ReductionQ...)
		vals = append(vals, row.CostQ...)
		for col, val := range vals {
			if err := setCell(f, "Summary", col+4, r, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRegionsSheet(f *excelize.File, regions []summary.RegionRow) error {
	if _, err := f.NewSheet("Regions"); err != nil {
		return fmt.Errorf("creating regions sheet: %w", err)
	}
	if err := writeHeader(f, "Regions", RegionsColumns); err != nil {
		return err
	}
	for i, row := range regions {
		r := i + 2
		if err := setCellString(f, "Regions", 1, r, row.Region); err != nil {
			return err
		}
		if err := setCellInt(f, "Regions", 2, r, row.Stocks); err != nil {
			return err
		}
		for col, val := range []float64{row.TotalCost, row.TotalReductionMEY, row.TotalReductionMSY} {
			if err := setCell(f, "Regions", col+3, r, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeReportSheet(f *excelize.File, report *simulation.RunReport) error {
	if _, err := f.NewSheet("Report"); err != nil {
		return fmt.Errorf("creating report sheet: %w", err)
	}
	lines := [][2]string{
		{"run_id", report.RunID},
		{"mode", ModeLabel(report.Params.Uncertainty)},
		{"alpha", fmt.Sprintf("%g", report.Params.Alpha)},
		{"draws", fmt.Sprintf("%d", report.Params.Draws)},
		{"resamples", fmt.Sprintf("%d", report.Params.Resamples)},
		{"seed", fmt.Sprintf("%d", report.Seed)},
		{"completed", fmt.Sprintf("%d", report.Completed)},
		{"elapsed", report.Elapsed.String()},
	}
	for _, name := range report.SpeciesNames() {
		lines = append(lines, [2]string{"excluded_" + name, fmt.Sprintf("%d", report.Excluded[name])})
	}
	for _, name := range report.FailedSpecies() {
		lines = append(lines, [2]string{"failed_" + name, report.Failures[name]})
	}
	for i, line := range lines {
		if err := setCellString(f, "Report", 1, i+1, line[0]); err != nil {
			return err
		}
		if err := setCellString(f, "Report", 2, i+1, line[1]); err != nil {
			return err
		}
	}
	return nil
}
