package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]int16{1, -3, 7}, []float64{1.25, -3, 6.5})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if d != 0.5 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}
}

func TestMaxAbsDiffNaN(t *testing.T) {
	d, err := MaxAbsDiff([]float64{math.NaN()}, []float64{0})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	// math.Max propagates NaN.
	if !math.IsNaN(d) {
		t.Fatalf("MaxAbsDiff = %v, want NaN", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]uint8{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireSamplesNear(t *testing.T) {
	RequireSamplesNear(t, []float32{1, 2}, []float64{1 + 1e-10, 2}, 1e-6)
	RequireSamplesNear(t, []int8{-4, 0}, []float64{-4.4, 0.3}, 0.5)
}
