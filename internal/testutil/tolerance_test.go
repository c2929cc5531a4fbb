package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1.1, 2, 2.5})
	if err != nil {
		t.Fatal(err)
	}
	if d != 0.5 {
		t.Errorf("MaxAbsDiff = %v, want 0.5", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireStrictPeak(t *testing.T) {
	RequireStrictPeak(t, []float64{0.1, 0.9, 0.2}, 1)
}
