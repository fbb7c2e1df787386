// Package elasticity implements the transform from a bycatch species' decline
// and mortality parameters to the required fractional reduction in fishing
// effort on the target stocks.
package elasticity

import (
	"errors"
	"fmt"
	"math"

	"github.com/sustfish/bycatch-tradeoffs/pkg/mathutil"
)

// ErrZeroMortality indicates the bycatch mortality rate is zero, making the
// required effort reduction undefined. Callers decide whether to drop the
// draw or handle it specially; the error must never be coerced to Inf.
var ErrZeroMortality = errors.New("bycatch mortality rate is zero")

// Required computes the fractional reduction in target-stock fishing effort
// needed to halt a bycatch species' decline.
//
// delta is the population decline rate (negative means declining), fe the
// bycatch mortality rate (non-negative), and alpha the elasticity exponent:
// the result is |delta/fe|^alpha clamped to [0, 1]. A reduction requirement
// beyond 100% is capped at 1. A non-declining population (delta >= 0)
// requires no reduction.
//
// Pure function, safe for concurrent use.
func Required(delta, fe, alpha float64) (float64, error) {
	if !mathutil.Defined(delta) || !mathutil.Defined(fe) {
		return 0, fmt.Errorf("undefined species parameters: delta=%v fe=%v", delta, fe)
	}
	if fe < 0 {
		return 0, fmt.Errorf("negative bycatch mortality rate %v", fe)
	}
	if fe == 0 {
		return 0, ErrZeroMortality
	}
	if alpha <= 0 {
		return 0, fmt.Errorf("non-positive elasticity exponent %v", alpha)
	}
	if delta >= 0 {
		return 0, nil
	}

	reduction := math.Pow(math.Abs(delta/fe), alpha)
	return mathutil.Clamp(reduction, 0, 1), nil
}
