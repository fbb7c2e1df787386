package elasticity

import (
	"errors"
	"math"
	"testing"
)

func TestRequiredKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		delta    float64
		fe       float64
		alpha    float64
		expected float64
	}{
		{name: "Half reduction", delta: -10, fe: 20, alpha: 1, expected: 0.5},
		{name: "Clamped to full reduction", delta: -40, fe: 10, alpha: 1, expected: 1.0},
		{name: "No decline means no reduction", delta: 5, fe: 10, alpha: 1, expected: 0},
		{name: "Stable population", delta: 0, fe: 10, alpha: 1, expected: 0},
		{name: "Exponent dampens small ratios", delta: -5, fe: 20, alpha: 2, expected: 0.0625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Required(tt.delta, tt.fe, tt.alpha)
			if err != nil {
				t.Fatalf("Required(%v, %v, %v) error = %v", tt.delta, tt.fe, tt.alpha, err)
			}
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Required(%v, %v, %v) = %v, expected %v", tt.delta, tt.fe, tt.alpha, got, tt.expected)
			}
		})
	}
}

// The transform must stay in [0, 1] for any declining population with a
// positive mortality rate.
func TestRequiredRange(t *testing.T) {
	deltas := []float64{-0.001, -0.5, -1, -7.3, -50, -1e6}
	fes := []float64{0.001, 0.5, 1, 12, 900}
	alphas := []float64{0.5, 1, 2}

	for _, delta := range deltas {
		for _, fe := range fes {
			for _, alpha := range alphas {
				got, err := Required(delta, fe, alpha)
				if err != nil {
					t.Fatalf("Required(%v, %v, %v) error = %v", delta, fe, alpha, err)
				}
				if got < 0 || got > 1 {
					t.Errorf("Required(%v, %v, %v) = %v, outside [0, 1]", delta, fe, alpha, got)
				}
			}
		}
	}
}

func TestRequiredZeroMortality(t *testing.T) {
	for _, delta := range []float64{-10, 0, 3} {
		_, err := Required(delta, 0, 1)
		if !errors.Is(err, ErrZeroMortality) {
			t.Errorf("Required(%v, 0, 1) error = %v, expected ErrZeroMortality", delta, err)
		}
	}
}

func TestRequiredUndefinedInputs(t *testing.T) {
	if _, err := Required(math.NaN(), 10, 1); err == nil {
		t.Error("Required(NaN, 10, 1) expected error, got nil")
	}
	if _, err := Required(-10, math.NaN(), 1); err == nil {
		t.Error("Required(-10, NaN, 1) expected error, got nil")
	}
	if _, err := Required(-10, -2, 1); err == nil {
		t.Error("Required(-10, -2, 1) expected error for negative mortality, got nil")
	}
	if _, err := Required(-10, 5, 0); err == nil {
		t.Error("Required(-10, 5, 0) expected error for non-positive alpha, got nil")
	}
}
