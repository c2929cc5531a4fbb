package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
		{name: "nan", value: math.NaN(), min: 0, max: 1, expected: 0},
		{name: "+inf", value: math.Inf(1), min: -2, max: 2, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestFloorMagnitude(t *testing.T) {
	if got := FloorMagnitude(0, 1e-9); got != 1e-9 {
		t.Fatalf("FloorMagnitude(0) = %v, want 1e-9", got)
	}
	if got := FloorMagnitude(-1e-12, 1e-9); got != 1e-9 {
		t.Fatalf("FloorMagnitude(-1e-12) = %v, want 1e-9", got)
	}
	if got := FloorMagnitude(-3, 1e-9); got != -3 {
		t.Fatalf("FloorMagnitude(-3) = %v, want -3", got)
	}
}

func TestGuardsAreTotal(t *testing.T) {
	inputs := []float64{0, -1, -1e300, 1e300, 1e-320, math.NaN(), math.Inf(1), math.Inf(-1)}

	for _, x := range inputs {
		if v := SafeLog(x, 0); math.IsNaN(v) || math.IsInf(v, -1) {
			t.Fatalf("SafeLog(%v) = %v", x, v)
		}
		if v := SafeSqrt(x); math.IsNaN(v) {
			t.Fatalf("SafeSqrt(%v) = %v", x, v)
		}
		if v := CappedExp(x, 0); math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("CappedExp(%v) = %v", x, v)
		}
		if v := SafePow(x, 1.5); math.IsNaN(v) {
			t.Fatalf("SafePow(%v) = %v", x, v)
		}
	}
}

func TestSafeDiv(t *testing.T) {
	if got := SafeDiv(1, 0, 1e-6); !NearlyEqual(got, 1e6, 1e-9) {
		t.Fatalf("SafeDiv(1, 0) = %v, want 1e6", got)
	}
	if got := SafeDiv(1, -1e-6, 1e-6); got != 0 {
		t.Fatalf("SafeDiv on cancelled denominator = %v, want 0", got)
	}
	if got := SafeDiv(6, 3, 0); !NearlyEqual(got, 2, 1e-6) {
		t.Fatalf("SafeDiv(6, 3) = %v, want ~2", got)
	}
}

func TestCappedExp(t *testing.T) {
	if got, want := CappedExp(1000, 20), math.Exp(20); got != want {
		t.Fatalf("CappedExp(1000) = %v, want %v", got, want)
	}
	if got := CappedExp(-1000, 20); got != 0 {
		t.Fatalf("CappedExp(-1000) = %v, want 0", got)
	}
}

func TestFlushDenormals(t *testing.T) {
	if FlushDenormals(1e-31) != 0 {
		t.Fatal("expected tiny value to flush to zero")
	}
	if FlushDenormals(1e-3) != 1e-3 {
		t.Fatal("expected normal value to pass through")
	}
}
