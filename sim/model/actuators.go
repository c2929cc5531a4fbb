package model

import (
	"math"

	"github.com/mahendrafhrz/eldig-sps/dsp/core"
)

const (
	minNozzleTau = 1e-3

	// LED diode constants.
	ledSaturation = 1e-12          // A
	electronQ     = 1.602e-19      // C
	boltzmann     = 1.38064852e-23 // J/K
	junctionTemp  = 300.0          // K
	ideality      = 2.0
)

// nozzle is a first-order lag driven by the flow channel, integrated with
// forward Euler.
type nozzle struct {
	y float64
}

func (*nozzle) Inputs() []int { return []int{Flow} }

func (n *nozzle) Generate(in Input) float64 {
	tau := math.Max(0.1+0.9*in.Control, minNozzleTau)
	var x float64
	if len(in.Deps) > 0 {
		x = in.Deps[0]
	}
	n.y += in.Timestep * (x - n.y) / tau
	return n.y
}

func (n *nozzle) Reset() { n.y = 0 }

// solenoid is a valve coil with force proportional to current.
type solenoid struct{ stateless }

func (solenoid) Generate(in Input) float64 {
	const ks = 10.0 // N/A
	iMax := 0.2 + 1.8*in.Control
	return ks * iMax * (0.5 + 0.5*math.Sin(phase(in.Frequency, in.Time)))
}

// vibrator is a haptic motor with a Gaussian response around resonance.
type vibrator struct{ stateless }

func (vibrator) Generate(in Input) float64 {
	spread := 0.1 + 1.5*in.Control
	k := 1 + 0.5*math.Sin(phase(in.Frequency, in.Time))
	d := k - 1
	return core.CappedExp(-d*d/(spread+ratioEpsilon), core.MaxExponent)
}

// doseDisplay is a dose indicator whose luminance decays as a stretched
// exponential from the dose start time, plus flicker and noise.
type doseDisplay struct {
	start float64
}

func (*doseDisplay) Inputs() []int { return nil }

func (d *doseDisplay) Generate(in Input) float64 {
	const (
		tau  = 1.5
		beta = 1.2
	)
	l0 := 50 + 150*in.Control
	td := math.Max(0, in.Time-d.start)
	l := l0 * core.CappedExp(-core.SafePow(td/tau, beta), core.MaxExponent)
	l += 0.03 * l0 * math.Sin(phase(0.3, in.Time))
	l += 0.01 * l0 * drawUniform(in.Rand, 1)
	return l
}

func (d *doseDisplay) Reset() { d.start = 0 }

// heater is an oxide/nitride stack whose conductivity is the thickness
// weighted mean of both layers.
type heater struct{ stateless }

func (heater) Generate(in Input) float64 {
	const (
		total    = 100e-9 // m
		sigmaOx  = 1e4
		sigmaNit = 5e3
	)
	fox := 0.1 + 0.9*in.Control
	tox := fox * total
	tnit := (1 - fox) * total
	sigma := core.SafeDiv(tox*sigmaOx+tnit*sigmaNit, tox+tnit, 1e-18)
	return sigma / 1000 * (1 + 0.5*math.Sin(phase(in.Frequency, in.Time)))
}

// led is a diode driven by a modulated junction voltage, current in mA.
type led struct{ stateless }

func (led) Generate(in Input) float64 {
	vj := 1.5 + in.Control + 0.05*math.Sin(phase(in.Frequency, in.Time))
	x := electronQ * vj / (ideality * boltzmann * junctionTemp)
	return ledSaturation * (core.CappedExp(x, core.MaxExponent) - 1) * 1e3
}
