package spectrum

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}
	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}
	if math.Abs(mag[1]-math.Sqrt2) > 1e-12 {
		t.Fatalf("Magnitude[1]=%f want=sqrt(2)", mag[1])
	}
	if Magnitude(nil) != nil {
		t.Fatal("Magnitude(nil) should be nil")
	}
}

func TestPeakBin(t *testing.T) {
	k, v := PeakBin([]float64{0.1, 0.7, 0.7, 0.2})
	if k != 1 || v != 0.7 {
		t.Fatalf("PeakBin = (%d, %v), want (1, 0.7)", k, v)
	}
	if k, _ := PeakBin(nil); k != -1 {
		t.Fatalf("PeakBin(nil) index = %d, want -1", k)
	}
}

func TestNormalizeToPeak(t *testing.T) {
	out := NormalizeToPeak([]float64{1, 4, 2})
	want := []float64{0.25, 1, 0.5}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("out[%d]=%v want=%v", i, out[i], want[i])
		}
	}

	zeros := NormalizeToPeak([]float64{0, 0, 0})
	for i, v := range zeros {
		if v != 0 || math.IsNaN(v) {
			t.Fatalf("zero spectrum normalized to %v at %d", v, i)
		}
	}
}
