package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerate(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeBlackman, TypeFlatTop} {
		t.Run(Info(typ).Name, func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}

			for i := range w {
				j := len(w) - 1 - i
				if math.Abs(w[i]-w[j]) > 1e-12 {
					t.Fatalf("window not symmetric at %d: %v != %v", i, w[i], w[j])
				}
			}
		})
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("expected nil for zero length, got %v", w)
	}
	if _, err := Coefficients(TypeHann, -1); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}

func TestPeriodicHann(t *testing.T) {
	w, err := Coefficients(TypeHann, 4, WithPeriodic())
	if err != nil {
		t.Fatalf("Coefficients() error = %v", err)
	}
	want := []float64{0, 0.5, 1, 0.5}
	for i := range want {
		if math.Abs(w[i]-want[i]) > 1e-12 {
			t.Fatalf("w[%d] = %v, want %v", i, w[i], want[i])
		}
	}
}

func TestCoherentGainMatchesMetadata(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeBlackman, TypeFlatTop} {
		w := Generate(typ, 4096, WithPeriodic())
		cg, err := CoherentGain(w)
		if err != nil {
			t.Fatalf("%s: CoherentGain() error = %v", Info(typ).Name, err)
		}
		if math.Abs(cg-Info(typ).CoherentGain) > 1e-6 {
			t.Fatalf("%s: coherent gain = %v, want %v", Info(typ).Name, cg, Info(typ).CoherentGain)
		}
	}
}

func TestCoherentGainErrors(t *testing.T) {
	if _, err := CoherentGain(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	if _, err := CoherentGain([]float64{1, -1}); !errors.Is(err, ErrZeroGain) {
		t.Fatalf("err = %v, want ErrZeroGain", err)
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{2, 4, 6}, []float64{0.5, 0.25, 0})
	if err != nil {
		t.Fatalf("ApplyCoefficients() error = %v", err)
	}
	want := []float64{1, 1, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	if _, err := ApplyCoefficients([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}
