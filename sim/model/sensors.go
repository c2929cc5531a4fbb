package model

import (
	"math"

	"github.com/mahendrafhrz/eldig-sps/dsp/core"
	"github.com/mahendrafhrz/eldig-sps/dsp/filter/onepole"
	"github.com/mahendrafhrz/eldig-sps/dsp/signal"
)

const (
	gravity = 9.81 // m/s²
	rhoAir  = 1.2  // kg/m³

	ratioEpsilon = 1e-6
)

func phase(freq, t float64) float64 {
	return 2 * math.Pi * freq * t
}

// humidity is a capacitive RH sensor normalized by its setpoint.
type humidity struct{ stateless }

func (humidity) Generate(in Input) float64 {
	phi := 20 + 60*in.Control
	cp := phi + 10*math.Sin(phase(in.Frequency, in.Time))
	return 100 * core.SafeDiv(cp, phi, ratioEpsilon)
}

// spo2 is a two-wavelength pulse oximeter, SpO2 = A - B·R.
type spo2 struct{ stateless }

func (spo2) Generate(in Input) float64 {
	const (
		a    = 110.0
		dcIR = 1.1
	)
	b := 20 + 20*in.Control
	acRed := 0.8 + 0.2*math.Sin(phase(in.Frequency, in.Time))
	acIR := 0.8 + 0.1*math.Cos(phase(in.Frequency+0.05, in.Time))
	r := core.SafeDiv(acRed, acIR/dcIR, ratioEpsilon)
	return a - b*r
}

// pressureDetector tracks the pressure envelope: fast attack, slower release.
var pressureDetector = onepole.Follower{Attack: 0.05, Release: 0.15}

// pressure is a differential pressure sensor behind a peak detector. The
// detector output is the carry state.
type pressure struct {
	stateless
	v float64
}

func (p *pressure) Generate(in Input) float64 {
	amp := 500 + 1500*in.Control
	x := amp * (0.5 + 0.5*math.Sin(phase(in.Frequency, in.Time)))
	p.v = pressureDetector.Step(p.v, x)
	return p.v / 10
}

func (p *pressure) Reset() { p.v = 0 }

// imu is a single-axis accelerometer under tilt with bias and sensor noise.
type imu struct{ stateless }

func (imu) Generate(in Input) float64 {
	const bias = 0.05
	thetaMax := math.Pi / 4 * in.Control
	theta := thetaMax * math.Sin(phase(in.Frequency, in.Time))
	return gravity*math.Sin(theta) + bias + drawUniform(in.Rand, 0.05)
}

var particleSizes = [...]float64{0.3, 0.5, 1.0, 2.5}

// particle is an optical particle counter summed over four size bins,
// weighted by size^1.5.
type particle struct{ stateless }

func (particle) Generate(in Input) float64 {
	k := 0.5 + 1.5*in.Control
	var cm float64
	for i, v := range particleSizes {
		offset := 0.8 * float64(i)
		count := 50 + 30*math.Sin(phase(in.Frequency+0.02*float64(i), in.Time)+offset)
		cm += math.Max(0, count) * core.SafePow(v, 1.5)
	}
	return k * cm
}

// flow is an orifice flow meter driven by the pressure channel's ΔP.
type flow struct{}

func (flow) Inputs() []int { return []int{Pressure} }

func (flow) Generate(in Input) float64 {
	const area = 1e-4 // m²
	cd := 0.5 + 0.5*in.Control
	dp := 10.0
	if len(in.Deps) > 0 {
		dp = math.Max(dp, in.Deps[0])
	}
	return cd * area * core.SafeSqrt(2*dp/rhoAir)
}

func (flow) Reset() {}

// drawUniform returns a value in [-amp, amp], or 0 without a source.
func drawUniform(src signal.Source, amp float64) float64 {
	if src == nil {
		return 0
	}
	return signal.Uniform(src, amp)
}
