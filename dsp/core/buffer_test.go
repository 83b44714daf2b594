package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrow(t *testing.T) {
	buf := make([]int16, 2)

	out := EnsureLen(buf, 5)
	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}
}

func TestEnsureLenNonPositive(t *testing.T) {
	out := EnsureLen([]uint8{1, 2, 3}, 0)
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}
