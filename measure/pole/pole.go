package pole

import (
	"fmt"
	"math"

	"github.com/mahendrafhrz/eldig-sps/dsp/core"
)

const (
	defaultTimestep = 0.1
	defaultEpsilon  = 1e-9
	defaultRatioMin = 1e-4
	defaultRatioMax = 10
	defaultZMin     = -2
	defaultZMax     = 2
)

// Limits holds the estimator step and stability guards.
type Limits struct {
	Timestep float64 // seconds between the two samples
	Epsilon  float64 // floor for |x0|
	RatioMin float64
	RatioMax float64
	ZMin     float64
	ZMax     float64
}

// DefaultLimits returns dt = 0.1 s, epsilon 1e-9, ratio clamp [1e-4, 10]
// and z clamp [-2, 2].
func DefaultLimits() Limits {
	return Limits{
		Timestep: defaultTimestep,
		Epsilon:  defaultEpsilon,
		RatioMin: defaultRatioMin,
		RatioMax: defaultRatioMax,
		ZMin:     defaultZMin,
		ZMax:     defaultZMax,
	}
}

// Validate reports limits that cannot produce a finite estimate.
func (l Limits) Validate() error {
	if !(l.Timestep > 0) || !core.IsFinite(l.Timestep) {
		return fmt.Errorf("pole timestep must be > 0: %v", l.Timestep)
	}
	if !(l.Epsilon > 0) {
		return fmt.Errorf("pole epsilon must be > 0: %v", l.Epsilon)
	}
	if !(l.RatioMin > 0) || !(l.RatioMax >= l.RatioMin) || math.IsInf(l.RatioMax, 0) {
		return fmt.Errorf("pole ratio range must satisfy 0 < min <= max < inf: [%v, %v]", l.RatioMin, l.RatioMax)
	}
	if !(l.ZMax >= l.ZMin) || math.IsInf(l.ZMin, 0) || math.IsInf(l.ZMax, 0) {
		return fmt.Errorf("pole z range must satisfy min <= max: [%v, %v]", l.ZMin, l.ZMax)
	}
	return nil
}

// Estimate is one pole estimate.
type Estimate struct {
	S     float64 // continuous-time pole, 1/s
	Z     float64 // discrete-time pole after clamping
	Ratio float64 // clamped x1/x0
}

// Stable reports whether the discrete pole lies strictly inside the unit circle.
func (e Estimate) Stable() bool {
	return math.Abs(e.Z) < 1
}

// Estimator turns sample pairs into pole estimates.
type Estimator struct {
	limits Limits
}

// NewEstimator validates limits and returns an estimator.
func NewEstimator(limits Limits) (*Estimator, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{limits: limits}, nil
}

// Limits returns the estimator configuration.
func (e *Estimator) Limits() Limits { return e.limits }

// Estimate computes the pole from the previous sample x0 and the current
// sample x1.
func (e *Estimator) Estimate(x0, x1 float64) Estimate {
	l := e.limits

	x0 = core.FloorMagnitude(x0, l.Epsilon)
	a := core.Clamp(x1/x0, l.RatioMin, l.RatioMax)

	s := core.SafeLog(a, l.RatioMin) / l.Timestep
	z := core.Clamp(math.Exp(s*l.Timestep), l.ZMin, l.ZMax)
	return Estimate{S: s, Z: z, Ratio: a}
}

// EstimateSeries estimates the pole from the last two samples of x.
func (e *Estimator) EstimateSeries(x []float64) (Estimate, error) {
	if len(x) < 2 {
		return Estimate{}, fmt.Errorf("pole estimate requires at least 2 samples: %d", len(x))
	}
	return e.Estimate(x[len(x)-2], x[len(x)-1]), nil
}
