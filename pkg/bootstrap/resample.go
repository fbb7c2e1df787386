// Package bootstrap implements the inner resampling loop of the simulation:
// bootstrap resamples of the target stock pool resolved against a required
// effort-reduction threshold.
package bootstrap

import (
	"github.com/sustfish/bycatch-tradeoffs/pkg/datasets"
	"github.com/sustfish/bycatch-tradeoffs/pkg/mathutil"
)

// Rand is the randomness a resample needs. The concrete source is supplied
// per task so parallel species runs stay independently seedable.
type Rand interface {
	Intn(n int) int
}

// Outcome is the result of one bootstrap resample.
//
// Proportion is the fraction of resampled stocks whose required reduction to
// the reference target meets or exceeds the draw's threshold; stocks with an
// undefined requirement are excluded from numerator and denominator. Cost is
// the weighted mean marginal cost among the stocks meeting the threshold.
// Either field is NaN when no record contributed to it.
type Outcome struct {
	Proportion float64
	Cost       float64
}

// Resampler draws bootstrap resamples from an immutable stock pool against
// one reference policy. Safe for concurrent use as long as each goroutine
// supplies its own Rand.
type Resampler struct {
	pool   []datasets.StockRecord
	policy datasets.Policy
}

// New returns a Resampler over pool measured against policy. The pool is held
// by reference and must not be mutated during simulation.
func New(pool []datasets.StockRecord, policy datasets.Policy) *Resampler {
	return &Resampler{pool: pool, policy: policy}
}

// Draw resamples size records with replacement (size <= 0 means the pool
// size) and resolves them against threshold.
func (r *Resampler) Draw(rng Rand, threshold float64, size int) Outcome {
	if size <= 0 {
		size = len(r.pool)
	}

	var met, defined int
	var costSum, weightSum float64
	for i := 0; i < size; i++ {
		rec := r.pool[rng.Intn(len(r.pool))]
		required := rec.RequiredReduction(r.policy)
		if !mathutil.Defined(required) {
			continue
		}
		defined++
		if required < threshold {
			continue
		}
		met++
		if mathutil.Defined(rec.MarginalCost) {
			costSum += rec.Weight * rec.MarginalCost
			weightSum += rec.Weight
		}
	}

	out := Outcome{Proportion: mathutil.Undefined(), Cost: mathutil.Undefined()}
	if defined > 0 {
		out.Proportion = float64(met) / float64(defined)
	}
	if weightSum > 0 {
		out.Cost = costSum / weightSum
	}
	return out
}
