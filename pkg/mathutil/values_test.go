package mathutil

import (
	"math"
	"testing"
)

func TestDefined(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected bool
	}{
		{name: "Ordinary value", val: 3.2, expected: true},
		{name: "Zero", val: 0, expected: true},
		{name: "Negative value", val: -17.5, expected: true},
		{name: "NaN", val: math.NaN(), expected: false},
		{name: "Positive infinity", val: math.Inf(1), expected: false},
		{name: "Negative infinity", val: math.Inf(-1), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Defined(tt.val); got != tt.expected {
				t.Errorf("Defined(%v) = %v, expected %v", tt.val, got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(math.Inf(-1)); !math.IsNaN(got) {
		t.Errorf("Normalize(-Inf) = %v, expected NaN", got)
	}
	if got := Normalize(2.5); got != 2.5 {
		t.Errorf("Normalize(2.5) = %v, expected 2.5", got)
	}
}

func TestFilterDefined(t *testing.T) {
	vals := []float64{1, math.NaN(), 2, math.Inf(1), 3}
	got := FilterDefined(vals)
	expected := []float64{1, 2, 3}
	if len(got) != len(expected) {
		t.Fatalf("FilterDefined() returned %d values, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("FilterDefined()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected float64
	}{
		{name: "Within range", val: 0.4, expected: 0.4},
		{name: "Below range", val: -0.2, expected: 0},
		{name: "Above range", val: 4.0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, 0, 1); got != tt.expected {
				t.Errorf("Clamp(%v, 0, 1) = %v, expected %v", tt.val, got, tt.expected)
			}
		})
	}

	if got := Clamp(math.NaN(), 0, 1); !math.IsNaN(got) {
		t.Errorf("Clamp(NaN, 0, 1) = %v, expected NaN to pass through", got)
	}
}
