package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Backend selects how an [Analyzer] evaluates the transform.
type Backend int

const (
	// BackendDirect sums every bin explicitly, O(N²/4).
	BackendDirect Backend = iota
	// BackendFFT runs a full complex FFT plan and keeps the first N/2 bins.
	BackendFFT
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendDirect:
		return "direct"
	case BackendFFT:
		return "fft"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// ParseBackend maps a backend name back to its Backend.
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "", "direct":
		return BackendDirect, nil
	case "fft":
		return BackendFFT, nil
	default:
		return 0, fmt.Errorf("unsupported spectrum backend: %s", name)
	}
}

// ErrLength reports an input window whose length differs from the analyzer size.
var ErrLength = errors.New("spectrum: window length mismatch")

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithBackend selects the transform backend.
func WithBackend(b Backend) Option {
	return func(a *Analyzer) {
		a.backend = b
	}
}

// Analyzer computes N/2 normalized magnitude bins from N-sample windows.
// An Analyzer reuses internal scratch and is not safe for concurrent use.
type Analyzer struct {
	size       int
	sampleRate float64
	backend    Backend

	cos []float64
	sin []float64
	re  []float64
	im  []float64

	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

// NewAnalyzer creates an analyzer for windows of length size sampled at
// sampleRate. size must be even and at least 2.
func NewAnalyzer(size int, sampleRate float64, opts ...Option) (*Analyzer, error) {
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("spectrum size must be even and >= 2: %d", size)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("spectrum sample rate must be > 0: %v", sampleRate)
	}

	a := &Analyzer{size: size, sampleRate: sampleRate}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	switch a.backend {
	case BackendDirect:
		a.cos = make([]float64, size)
		a.sin = make([]float64, size)
		for m := range size {
			w := 2 * math.Pi * float64(m) / float64(size)
			a.cos[m] = math.Cos(w)
			a.sin[m] = math.Sin(w)
		}
		a.re = make([]float64, size/2)
		a.im = make([]float64, size/2)
	case BackendFFT:
		plan, err := algofft.NewPlan64(size)
		if err != nil {
			return nil, fmt.Errorf("spectrum init fft plan: %w", err)
		}
		a.plan = plan
		a.in = make([]complex128, size)
		a.out = make([]complex128, size)
	default:
		return nil, fmt.Errorf("unsupported spectrum backend: %d", int(a.backend))
	}
	return a, nil
}

// Size returns the window length N.
func (a *Analyzer) Size() int { return a.size }

// Bins returns the number of output bins, N/2.
func (a *Analyzer) Bins() int { return a.size / 2 }

// Backend returns the configured backend.
func (a *Analyzer) Backend() Backend { return a.backend }

// BinFrequency returns the centre frequency of bin k in Hz, k·fs/N.
func (a *Analyzer) BinFrequency(k int) float64 {
	return float64(k) * a.sampleRate / float64(a.size)
}

// Frequencies returns the centre frequency of every output bin.
func (a *Analyzer) Frequencies() []float64 {
	out := make([]float64, a.Bins())
	for k := range out {
		out[k] = a.BinFrequency(k)
	}
	return out
}

// Magnitude writes the N/2 bin magnitudes of x into dst and returns it.
// dst is reallocated when its capacity is short.
func (a *Analyzer) Magnitude(dst, x []float64) ([]float64, error) {
	if len(x) != a.size {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLength, len(x), a.size)
	}
	half := a.Bins()
	if cap(dst) < half {
		dst = make([]float64, half)
	}
	dst = dst[:half]

	switch a.backend {
	case BackendFFT:
		if err := a.fft(dst, x); err != nil {
			return nil, err
		}
	default:
		a.direct(dst, x)
	}

	vecmath.ScaleBlock(dst, dst, 1/float64(a.size))
	return dst, nil
}

// direct evaluates Re_k = Σ x[t]·cos(-2πkt/N) and Im_k = Σ x[t]·sin(-2πkt/N)
// using the twiddle table indexed by k·t mod N.
func (a *Analyzer) direct(dst, x []float64) {
	n := a.size
	for k := range a.re {
		var re, im float64
		m := 0
		for t := range n {
			re += x[t] * a.cos[m]
			im -= x[t] * a.sin[m]
			m += k
			if m >= n {
				m -= n
			}
		}
		a.re[k] = re
		a.im[k] = im
	}
	vecmath.Magnitude(dst, a.re, a.im)
}

func (a *Analyzer) fft(dst, x []float64) error {
	for i, v := range x {
		a.in[i] = complex(v, 0)
	}
	if err := a.plan.Forward(a.out, a.in); err != nil {
		return fmt.Errorf("spectrum fft forward: %w", err)
	}
	copy(dst, Magnitude(a.out[:len(dst)]))
	return nil
}
