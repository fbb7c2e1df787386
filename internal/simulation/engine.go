// Package simulation drives the Monte Carlo core: for each bycatch species,
// n1 outer draws of the species' decline and mortality parameters mapped
// through the elasticity transform, each resolved against the target stock
// pool by n2 bootstrap resamples.
package simulation

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sustfish/bycatch-tradeoffs/pkg/bootstrap"
	"github.com/sustfish/bycatch-tradeoffs/pkg/datasets"
	"github.com/sustfish/bycatch-tradeoffs/pkg/elasticity"
	"github.com/sustfish/bycatch-tradeoffs/pkg/mathutil"
)

// Params fixes the simulation dimensions for an entire run.
type Params struct {
	Draws        int     // n1, outer Monte Carlo draws per species
	Resamples    int     // n2, bootstrap resamples per draw
	Alpha        float64 // elasticity exponent
	Uncertainty  bool    // draw species parameters from distributions
	ResampleSize int     // records per resample, 0 means pool size
}

// ResultRow is one persisted output record: the outcome of one bootstrap
// resample of one draw for one species under one reference policy.
type ResultRow struct {
	Species    string
	Draw       int
	Resample   int
	Policy     datasets.Policy
	Reduction  float64
	Proportion float64
	Cost       float64
}

// Engine runs the per-species simulation against a fixed stock pool.
type Engine struct {
	params     Params
	resamplers map[datasets.Policy]*bootstrap.Resampler
	logger     *zap.Logger
}

// NewEngine builds an Engine over pool. The pool is read-only for the
// lifetime of the engine.
func NewEngine(pool []datasets.StockRecord, params Params, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("empty target stock pool")
	}
	if params.Draws < 1 || params.Resamples < 1 {
		return nil, fmt.Errorf("draw counts must be positive, got n1=%d n2=%d", params.Draws, params.Resamples)
	}
	if params.Alpha <= 0 {
		return nil, fmt.Errorf("elasticity exponent must be positive, got %v", params.Alpha)
	}

	resamplers := make(map[datasets.Policy]*bootstrap.Resampler, len(datasets.Policies))
	for _, policy := range datasets.Policies {
		resamplers[policy] = bootstrap.New(pool, policy)
	}
	return &Engine{params: params, resamplers: resamplers, logger: logger}, nil
}

// RunSpecies simulates one species with its own seeded random stream and
// returns the accumulated result rows plus the number of excluded draws.
// A draw whose elasticity result is undefined (zero mortality rate) is
// skipped and counted, not propagated; a species excluded on every draw
// returns zero rows with a warning rather than an error.
func (e *Engine) RunSpecies(sp datasets.Species, seed uint64) ([]ResultRow, int, error) {
	if sp.Name == "" {
		return nil, 0, fmt.Errorf("species with empty name")
	}
	if !mathutil.Defined(sp.Delta) || !mathutil.Defined(sp.Fe) {
		return nil, 0, fmt.Errorf("species %s has undefined parameters delta=%v fe=%v", sp.Name, sp.Delta, sp.Fe)
	}
	if sp.Fe < 0 {
		return nil, 0, fmt.Errorf("species %s has negative mortality rate %v", sp.Name, sp.Fe)
	}

	src := rand.NewSource(seed)
	rng := rand.New(src)
	deltaDist := parameterDist(sp.Delta, sp.DeltaSD, src)
	feDist := parameterDist(sp.Fe, sp.FeSD, src)

	rows := make([]ResultRow, 0, e.params.Draws*e.params.Resamples*len(datasets.Policies))
	excluded := 0
	for draw := 0; draw < e.params.Draws; draw++ {
		delta, fe := sp.Delta, sp.Fe
		if e.params.Uncertainty {
			delta = deltaDist()
			// Mortality rates below zero are not physical; a draw clamped
			// to zero is then excluded by the zero-mortality rule.
			if fe = feDist(); fe < 0 {
				fe = 0
			}
		}

		threshold, err := elasticity.Required(delta, fe, e.params.Alpha)
		if err != nil {
			excluded++
			e.logger.Debug("excluding draw",
				zap.String("op", "simulation.RunSpecies"),
				zap.String("species", sp.Name),
				zap.Int("draw", draw),
				zap.Error(err),
			)
			continue
		}

		for resample := 0; resample < e.params.Resamples; resample++ {
			for _, policy := range datasets.Policies {
				out := e.resamplers[policy].Draw(rng, threshold, e.params.ResampleSize)
				rows = append(rows, ResultRow{
					Species:    sp.Name,
					Draw:       draw,
					Resample:   resample,
					Policy:     policy,
					Reduction:  threshold,
					Proportion: out.Proportion,
					Cost:       out.Cost,
				})
			}
		}
	}

	if excluded == e.params.Draws {
		e.logger.Warn("species excluded on every draw",
			zap.String("op", "simulation.RunSpecies"),
			zap.String("species", sp.Name),
			zap.Int("draws", e.params.Draws),
		)
	}
	return rows, excluded, nil
}

// parameterDist returns a sampler for a species parameter. Without a usable
// standard deviation the point estimate is reused on every draw.
func parameterDist(mean, sd float64, src rand.Source) func() float64 {
	if !mathutil.Defined(sd) || sd <= 0 {
		return func() float64 { return mean }
	}
	dist := distuv.Normal{Mu: mean, Sigma: sd, Src: src}
	return dist.Rand
}
