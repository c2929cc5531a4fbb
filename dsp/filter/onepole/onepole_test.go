package onepole

import (
	"math"
	"testing"
)

func TestNewValidation(t *testing.T) {
	for _, a := range []float64{0, -0.1, 1.5, math.NaN()} {
		if _, err := New(a); err == nil {
			t.Fatalf("New(%v) expected error", a)
		}
	}
	if _, err := New(1); err != nil {
		t.Fatalf("New(1) error = %v", err)
	}
}

func TestSmootherConvergence(t *testing.T) {
	const (
		alpha = 0.02
		v     = 3.5
	)
	s, err := New(alpha)
	if err != nil {
		t.Fatal(err)
	}

	e0 := math.Abs(s.State() - v)
	for k := 1; k <= 400; k++ {
		y := s.Process(v)
		bound := math.Pow(1-alpha, float64(k)) * e0
		if math.Abs(y-v) > bound+1e-9 {
			t.Fatalf("k=%d: |y-v| = %v exceeds bound %v", k, math.Abs(y-v), bound)
		}
	}
}

func TestSmootherDecaysToExactZero(t *testing.T) {
	s, _ := New(0.5)
	s.Process(1)
	for range 200 {
		s.Process(0)
	}
	if s.State() != 0 {
		t.Fatalf("State() = %v after decay, want exactly 0", s.State())
	}
}

func TestSmootherFirstStep(t *testing.T) {
	s, _ := New(0.02)
	if got := s.Process(10); math.Abs(got-0.2) > 1e-15 {
		t.Fatalf("first output = %v, want 0.2", got)
	}
	s.Reset()
	if s.State() != 0 {
		t.Fatalf("State() = %v after Reset", s.State())
	}
}

func TestTimeConstant(t *testing.T) {
	s, _ := New(0.02)
	tc := s.TimeConstant()
	if tc < 49 || tc > 50 {
		t.Fatalf("TimeConstant() = %v, want ~49.5", tc)
	}
}

func TestFollowerAsymmetry(t *testing.T) {
	f := Follower{Attack: 0.05, Release: 0.15}

	up := f.Step(0, 100)
	if math.Abs(up-5) > 1e-12 {
		t.Fatalf("attack step = %v, want 5", up)
	}
	down := f.Step(100, 0)
	if math.Abs(down-85) > 1e-12 {
		t.Fatalf("release step = %v, want 85", down)
	}
}
