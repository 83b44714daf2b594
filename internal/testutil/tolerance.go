package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavegen/dsp/core"
)

// RequireSamplesNear fails t unless got has the length of want and every
// sample lies within eps of its reference value.
func RequireSamplesNear[S core.Sample](t testing.TB, got []S, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i, s := range got {
		if d := math.Abs(float64(s) - want[i]); !(d <= eps) {
			t.Fatalf("sample %d: got %v, want %v (|diff| %g > %g)", i, s, want[i], d, eps)
		}
	}
}

// MaxAbsDiff returns the largest absolute deviation of got from want.
func MaxAbsDiff[S core.Sample](got []S, want []float64) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	worst := 0.0
	for i, s := range got {
		worst = math.Max(worst, math.Abs(float64(s)-want[i]))
	}
	return worst, nil
}
