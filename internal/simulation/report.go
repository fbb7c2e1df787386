package simulation

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// RunReport records everything needed to trace a run: its identifier, the
// fixed simulation dimensions, per-species excluded-draw counts, and the
// species that failed entirely.
type RunReport struct {
	RunID     string
	StartedAt time.Time
	Elapsed   time.Duration
	Params    Params
	Seed      int64
	Completed int
	Excluded  map[string]int
	Failures  map[string]string
}

// NewRunReport starts a report for one run of the given dimensions.
func NewRunReport(params Params, seed int64) *RunReport {
	return &RunReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Params:    params,
		Seed:      seed,
		Excluded:  make(map[string]int),
		Failures:  make(map[string]string),
	}
}

// RecordSpecies notes a completed species and its excluded draw count.
func (r *RunReport) RecordSpecies(name string, excluded int) {
	r.Completed++
	r.Excluded[name] = excluded
}

// RecordFailure notes a species whose task failed entirely.
func (r *RunReport) RecordFailure(name string, err error) {
	r.Failures[name] = err.Error()
}

// FailedSpecies returns the names of failed species in sorted order.
func (r *RunReport) FailedSpecies() []string {
	names := make([]string, 0, len(r.Failures))
	for name := range r.Failures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SpeciesNames returns the completed species names in sorted order.
func (r *RunReport) SpeciesNames() []string {
	names := make([]string, 0, len(r.Excluded))
	for name := range r.Excluded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
