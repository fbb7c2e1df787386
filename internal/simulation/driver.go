package simulation

import (
	"fmt"
	"hash/fnv"
	"runtime"
	"sort"
	"time"

	"github.com/remeh/sizedwaitgroup"
	"go.uber.org/zap"

	"github.com/sustfish/bycatch-tradeoffs/pkg/datasets"
)

// Progress is invoked after each species task completes with the number of
// finished tasks and the total. It runs on the collector goroutine, never on
// a worker, so a slow callback cannot stall the simulation.
type Progress func(done, total int)

// Driver fans the engine out over all species, one independent task each.
type Driver struct {
	engine   *Engine
	seed     int64
	workers  int
	progress Progress
	logger   *zap.Logger
}

// NewDriver wires a Driver around engine. workers <= 0 selects one worker per
// available CPU. progress may be nil.
func NewDriver(engine *Engine, seed int64, workers int, progress Progress, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Driver{engine: engine, seed: seed, workers: workers, progress: progress, logger: logger}
}

// RunResult is the collected output of a full run: the unified results table
// plus the run report with exclusion counts and per-species failures.
type RunResult struct {
	Rows   []ResultRow
	Report *RunReport
}

type speciesResult struct {
	name     string
	rows     []ResultRow
	excluded int
	err      error
}

// Run executes one task per species and blocks until all have completed. A
// failing species is recorded in the report and does not cancel its siblings;
// the concatenated rows are stably ordered by species, draw, resample, and
// policy regardless of completion order.
func (d *Driver) Run(species []datasets.Species) (*RunResult, error) {
	if len(species) == 0 {
		return nil, fmt.Errorf("no bycatch species to simulate")
	}

	report := NewRunReport(d.engine.params, d.seed)
	start := time.Now()

	swg := sizedwaitgroup.New(d.workers)
	results := make(chan speciesResult, len(species))
	for _, sp := range species {
		swg.Add()
		go func(sp datasets.Species) {
			defer swg.Done()
			rows, excluded, err := d.engine.RunSpecies(sp, speciesSeed(d.seed, sp.Name))
			results <- speciesResult{name: sp.Name, rows: rows, excluded: excluded, err: err}
		}(sp)
	}

	collected := make(chan struct{})
	var rows []ResultRow
	go func() {
		defer close(collected)
		done := 0
		for res := range results {
			done++
			if res.err != nil {
				report.RecordFailure(res.name, res.err)
				d.logger.Error("species task failed",
					zap.String("op", "simulation.Run"),
					zap.String("species", res.name),
					zap.Error(res.err),
				)
			} else {
				report.RecordSpecies(res.name, res.excluded)
				rows = append(rows, res.rows...)
			}
			if d.progress != nil {
				d.progress(done, len(species))
			}
		}
	}()

	swg.Wait()
	close(results)
	<-collected

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Species != rows[j].Species {
			return rows[i].Species < rows[j].Species
		}
		if rows[i].Draw != rows[j].Draw {
			return rows[i].Draw < rows[j].Draw
		}
		if rows[i].Resample != rows[j].Resample {
			return rows[i].Resample < rows[j].Resample
		}
		return rows[i].Policy < rows[j].Policy
	})

	report.Elapsed = time.Since(start)
	return &RunResult{Rows: rows, Report: report}, nil
}

// speciesSeed derives an independent stream seed per species from the master
// seed, so results do not depend on scheduling order or worker count.
func speciesSeed(seed int64, name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, name)))
	return h.Sum64()
}
