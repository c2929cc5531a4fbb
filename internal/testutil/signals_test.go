package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("length = %d, want 48", len(s))
	}
	if s[0] != 0 {
		t.Errorf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[12]-1) > 1e-12 {
		t.Errorf("quarter period = %v, want 1", s[12])
	}
}

func TestBinSineCycles(t *testing.T) {
	s := BinSine(4, 2, 128)
	// quarter of the first cycle
	if math.Abs(s[8]-2) > 1e-12 {
		t.Fatalf("s[8] = %v, want 2", s[8])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(7, 0.5, 256)
	b := DeterministicNoise(7, 0.5, 256)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d differs for same seed", i)
		}
		if math.Abs(a[i]) > 0.5 {
			t.Fatalf("index %d: %v exceeds amplitude", i, a[i])
		}
	}
	c := DeterministicNoise(8, 0.5, 256)
	if d, _ := MaxAbsDiff(a, c); d == 0 {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestExponential(t *testing.T) {
	x := Exponential(2, -1, 0.1, 3)
	want := []float64{2, 2 * math.Exp(-0.1), 2 * math.Exp(-0.2)}
	RequireSliceNearlyEqual(t, x, want, 1e-15)
}

func TestDC(t *testing.T) {
	for i, v := range DC(0.5, 10) {
		if v != 0.5 {
			t.Fatalf("index %d = %v", i, v)
		}
	}
}
