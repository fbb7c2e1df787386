// Package mathutil provides utilities for the undefined-value discipline used
// throughout the pipeline: a missing or non-finite quantity is represented as
// NaN and is excluded from aggregates rather than treated as zero.
package mathutil

import "math"

// Undefined returns the marker used for missing or undefined values.
func Undefined() float64 {
	return math.NaN()
}

// Defined reports whether a value carries usable numeric information.
// NaN and ±Inf are both treated as undefined; a ratio that divides by zero
// upstream must never survive as a valid extreme value.
func Defined(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// Normalize maps any non-finite value to the undefined marker and returns
// finite values unchanged.
func Normalize(val float64) float64 {
	if !Defined(val) {
		return math.NaN()
	}
	return val
}

// FilterDefined returns the defined values of vals in their original order.
// The input slice is not modified.
func FilterDefined(vals []float64) []float64 {
	defined := make([]float64, 0, len(vals))
	for _, v := range vals {
		if Defined(v) {
			defined = append(defined, v)
		}
	}
	return defined
}

// Clamp restricts val to the closed interval [lo, hi]. Undefined values pass
// through unchanged so callers can still detect them.
func Clamp(val, lo, hi float64) float64 {
	if !Defined(val) {
		return val
	}
	return math.Min(math.Max(val, lo), hi)
}
