package simulation

import (
	"math"
	"reflect"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/sustfish/bycatch-tradeoffs/pkg/datasets"
)

func testSpeciesList() []datasets.Species {
	return []datasets.Species{
		{Name: "Loggerhead", Delta: -8, Fe: 12, DeltaSD: 2, FeSD: 3},
		{Name: "Vaquita", Delta: -45, Fe: 18},
		{Name: "Albatross", Delta: -2, Fe: 9, DeltaSD: 0.5, FeSD: 1},
	}
}

func runDriver(t *testing.T, species []datasets.Species, workers int, progress Progress) *RunResult {
	t.Helper()
	logger := zap.NewNop()
	engine, err := NewEngine(testPool(), Params{Draws: 10, Resamples: 4, Alpha: 1, Uncertainty: true}, logger)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	result, err := NewDriver(engine, 1234, workers, progress, logger).Run(species)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return result
}

// Parallel and sequential execution must produce identical sorted results:
// per-species seeds are derived from the master seed, not from scheduling.
func TestRunParallelMatchesSequential(t *testing.T) {
	species := testSpeciesList()
	parallel := runDriver(t, species, 4, nil)
	sequential := runDriver(t, species, 1, nil)

	if !reflect.DeepEqual(stripNaN(parallel.Rows), stripNaN(sequential.Rows)) {
		t.Error("parallel and sequential runs produced different results tables")
	}
}

func TestRunRowsSorted(t *testing.T) {
	result := runDriver(t, testSpeciesList(), 4, nil)
	rows := result.Rows
	if len(rows) == 0 {
		t.Fatal("run produced no rows")
	}
	for i := 1; i < len(rows); i++ {
		a, b := rows[i-1], rows[i]
		if a.Species > b.Species {
			t.Fatalf("rows not sorted by species at %d: %q > %q", i, a.Species, b.Species)
		}
		if a.Species == b.Species && a.Draw > b.Draw {
			t.Fatalf("rows not sorted by draw at %d", i)
		}
	}
}

func TestRunProgress(t *testing.T) {
	var mu sync.Mutex
	var calls [][2]int
	progress := func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, [2]int{done, total})
	}

	species := testSpeciesList()
	runDriver(t, species, 2, progress)

	if len(calls) != len(species) {
		t.Fatalf("progress called %d times, expected %d", len(calls), len(species))
	}
	last := calls[len(calls)-1]
	if last[0] != len(species) || last[1] != len(species) {
		t.Errorf("final progress = %v, expected [%d %d]", last, len(species), len(species))
	}
	for i, call := range calls {
		if call[0] != i+1 {
			t.Errorf("progress call %d reported done=%d", i, call[0])
		}
	}
}

// One malformed species must not cancel the others; its failure is surfaced
// in the run report alongside the partial results.
func TestRunIsolatesSpeciesFailure(t *testing.T) {
	species := append(testSpeciesList(), datasets.Species{Name: "Broken", Delta: math.NaN(), Fe: 1})
	result := runDriver(t, species, 4, nil)

	report := result.Report
	if report.Completed != 3 {
		t.Errorf("completed = %d, expected 3", report.Completed)
	}
	if len(report.Failures) != 1 {
		t.Fatalf("failures = %v, expected exactly one", report.Failures)
	}
	if _, ok := report.Failures["Broken"]; !ok {
		t.Errorf("failure for Broken missing from report: %v", report.Failures)
	}
	for _, row := range result.Rows {
		if row.Species == "Broken" {
			t.Fatal("failed species contributed rows")
		}
	}
}

func TestRunEmptySpeciesList(t *testing.T) {
	logger := zap.NewNop()
	engine, err := NewEngine(testPool(), Params{Draws: 1, Resamples: 1, Alpha: 1}, logger)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if _, err := NewDriver(engine, 1, 1, nil, logger).Run(nil); err == nil {
		t.Error("Run() with no species expected error, got nil")
	}
}

func TestRunReportExclusions(t *testing.T) {
	species := []datasets.Species{
		{Name: "Fine", Delta: -5, Fe: 10},
		{Name: "ZeroMortality", Delta: -5, Fe: 0},
	}
	result := runDriver(t, species, 2, nil)

	if got := result.Report.Excluded["ZeroMortality"]; got != 10 {
		t.Errorf("excluded[ZeroMortality] = %d, expected 10", got)
	}
	if got := result.Report.Excluded["Fine"]; got != 0 {
		t.Errorf("excluded[Fine] = %d, expected 0", got)
	}
	if names := result.Report.SpeciesNames(); !reflect.DeepEqual(names, []string{"Fine", "ZeroMortality"}) {
		t.Errorf("SpeciesNames() = %v", names)
	}
}
