package signal

import "testing"

func TestSourceSeeded(t *testing.T) {
	a := NewSource(7)
	b := NewSource(7)
	for i := 0; i < 32; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d differs: %v != %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d = %v outside [0,1)", i, va)
		}
	}
}

func TestSequenceWraps(t *testing.T) {
	s := NewSequence(0.1, 0.9)
	got := []float64{s.Float64(), s.Float64(), s.Float64()}
	if got[0] != 0.1 || got[1] != 0.9 || got[2] != 0.1 {
		t.Fatalf("sequence = %v", got)
	}
	s.Rewind()
	if s.Float64() != 0.1 {
		t.Fatal("Rewind did not restart the sequence")
	}
	if NewSequence().Float64() != 0.5 {
		t.Fatal("empty sequence should yield 0.5")
	}
}

func TestUniformBounds(t *testing.T) {
	tests := []struct {
		u    float64
		want float64
	}{
		{u: 0, want: -0.4},
		{u: 0.5, want: 0},
		{u: 0.75, want: 0.2},
	}
	for _, tt := range tests {
		got := Uniform(NewSequence(tt.u), 0.4)
		if got != tt.want {
			t.Fatalf("Uniform(u=%v) = %v, want %v", tt.u, got, tt.want)
		}
	}
}
