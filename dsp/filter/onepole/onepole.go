package onepole

import (
	"fmt"
	"math"

	"github.com/mahendrafhrz/eldig-sps/dsp/core"
)

// Step returns prev + alpha*(x - prev).
func Step(prev, x, alpha float64) float64 {
	return prev + alpha*(x-prev)
}

// Smoother is a single-pole exponential smoother. The zero value has
// alpha 0 and never moves; use [New].
type Smoother struct {
	alpha float64
	y     float64
}

// New creates a smoother with coefficient alpha in (0, 1].
func New(alpha float64) (Smoother, error) {
	if !(alpha > 0 && alpha <= 1) {
		return Smoother{}, fmt.Errorf("onepole alpha must be in (0,1]: %v", alpha)
	}
	return Smoother{alpha: alpha}, nil
}

// Alpha returns the smoothing coefficient.
func (s *Smoother) Alpha() float64 { return s.alpha }

// TimeConstant returns the time constant in samples, -1/ln(1-α).
// For small α this is close to 1/α.
func (s *Smoother) TimeConstant() float64 {
	if s.alpha >= 1 {
		return 0
	}
	return -1 / math.Log1p(-s.alpha)
}

// Process advances the smoother by one sample and returns the new output.
// Outputs that decay into the denormal range are flushed to zero.
func (s *Smoother) Process(x float64) float64 {
	s.y = core.FlushDenormals(Step(s.y, x, s.alpha))
	return s.y
}

// State returns the last output.
func (s *Smoother) State() float64 { return s.y }

// Reset sets the output memory to zero.
func (s *Smoother) Reset() { s.y = 0 }

// Follower is an asymmetric smoother: inputs at or above the output pull
// with the attack coefficient, inputs below it with the release coefficient.
type Follower struct {
	Attack  float64
	Release float64
}

// Step returns the follower output for input x given the previous output.
func (f Follower) Step(prev, x float64) float64 {
	if x >= prev {
		return Step(prev, x, f.Attack)
	}
	return Step(prev, x, f.Release)
}
