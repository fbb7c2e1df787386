// Package datasets defines the input data model of the pipeline and loads the
// bycatch species and target stock tables from CSV files.
//
// Missing numeric values ("", "NA", "NaN") and non-finite ratios are
// normalized to NaN so downstream aggregates can exclude rather than absorb
// them; they are never coerced to zero.
package datasets

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sustfish/bycatch-tradeoffs/pkg/mathutil"
)

// Policy selects the reference target against which a stock's required effort
// reduction is measured.
type Policy string

const (
	// PolicyMEY measures reductions against the maximum economic yield target.
	PolicyMEY Policy = "MEY"

	// PolicyMSY measures reductions against the maximum sustainable yield target.
	PolicyMSY Policy = "MSY"
)

// Policies lists the reference policies in their reporting order.
var Policies = []Policy{PolicyMEY, PolicyMSY}

// table is one parsed CSV file with header-based column access.
type table struct {
	path    string
	columns map[string]int
	rows    [][]string
}

func readTable(path string, required []string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s has no header row", path)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%s is missing required column %q", path, name)
		}
	}

	return &table{path: path, columns: columns, rows: records[1:]}, nil
}

// field returns the raw cell for a named column, or "" when the column is
// absent from the file.
func (t *table) field(row []string, name string) string {
	i, ok := t.columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// numeric parses a cell into a float64. Empty cells and NA tokens yield NaN;
// parsed non-finite values are normalized to NaN as well.
func (t *table) numeric(row []string, name string) (float64, error) {
	raw := t.field(row, name)
	if raw == "" || strings.EqualFold(raw, "na") || strings.EqualFold(raw, "nan") {
		return mathutil.Undefined(), nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: column %q: invalid numeric value %q", t.path, name, raw)
	}
	return mathutil.Normalize(val), nil
}
